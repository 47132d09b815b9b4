package application

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/application/model/dto"
	"innkeep/internal/domains/application/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	gDto "innkeep/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Application
	otel    otel.Otel
}

func New(service service.Application, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", handler.Submit)
		r.Get("/mine", handler.ListMine)
		r.Get("/pending", handler.ListPending)
		r.Post("/{id}/decision", handler.Decide)
	})
}

// Submit handles hotel application submission
// @Summary Submit a hotel application
// @Description Submit a new hotel listing application for admin review.
// @Tags Application
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application Request"
// @Success 201 {object} dto.SubmitApplicationResponse "Application submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/applications [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitApplication")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		err := failure.Unauthorized("missing user identity")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.SubmitApplicationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit application")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Application submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// ListMine lists the authenticated user's applications
// @Summary List my applications
// @Description List applications submitted by the authenticated user, newest first.
// @Tags Application
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetApplicationsResponse "Applications"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/applications/mine [get]
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyApplications")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		err := failure.Unauthorized("missing user identity")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.ListMine(ctx, userID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list applications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListPending lists applications awaiting review
// @Summary List pending applications
// @Description List all pending applications for admin review, newest first.
// @Tags Application
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetApplicationsResponse "Pending applications"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/applications/pending [get]
func (handler *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPendingApplications")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.ListPending(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list pending applications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Decide approves or rejects an application
// @Summary Decide on an application
// @Description Approve or reject a pending application. Approval publishes the hotel.
// @Tags Application
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.DecideApplicationRequest true "Decision Request"
// @Success 200 {object} dto.DecideApplicationResponse "Decision recorded"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/applications/{id}/decision [post]
func (handler *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideApplication")
	defer scope.End()

	applicationID := chi.URLParam(r, constant.RequestParamID)

	req := dto.DecideApplicationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Decide(ctx, applicationID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide application")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Application decision recorded")

	response.WithJSON(w, http.StatusOK, res)
}
