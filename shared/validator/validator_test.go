package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"innkeep/shared/failure"
	"innkeep/shared/validator"
)

type listingPayload struct {
	NameZH          string `json:"name_zh"          validate:"required,max=128"`
	Address         string `json:"address"          validate:"required,max=256"`
	StarRating      int    `json:"star_rating"      validate:"omitempty,min=1,max=5"`
	OperatingPeriod string `json:"operating_period" validate:"required,daterange"`
	Action          string `json:"action"           validate:"omitempty,oneof=approve reject"`
}

func validPayload() listingPayload {
	return listingPayload{
		NameZH:          "云端酒店",
		Address:         "1 Harbor Road",
		StarRating:      4,
		OperatingPeriod: "[2024-01-01,2026-01-01)",
		Action:          "approve",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*listingPayload)
		expectError bool
	}{
		{
			name:        "valid payload",
			mutate:      func(*listingPayload) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(p *listingPayload) { p.NameZH = "" },
			expectError: true,
		},
		{
			name:        "star rating above range",
			mutate:      func(p *listingPayload) { p.StarRating = 6 },
			expectError: true,
		},
		{
			name:        "star rating omitted is allowed",
			mutate:      func(p *listingPayload) { p.StarRating = 0 },
			expectError: false,
		},
		{
			name:        "malformed daterange",
			mutate:      func(p *listingPayload) { p.OperatingPeriod = "2024-01-01 to 2026-01-01" },
			expectError: true,
		},
		{
			name:        "inverted daterange",
			mutate:      func(p *listingPayload) { p.OperatingPeriod = "[2026-01-01,2024-01-01)" },
			expectError: true,
		},
		{
			name:        "action outside allowed set",
			mutate:      func(p *listingPayload) { p.Action = "defer" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := validator.ValidateStruct(&payload)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := failure.GetCode(err); code != http.StatusBadRequest {
					t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDecodesBody(t *testing.T) {
	body := strings.NewReader(`{
		"name_zh": "云端酒店",
		"address": "1 Harbor Road",
		"operating_period": "[2024-01-01,2026-01-01)"
	}`)

	payload := listingPayload{}

	if err := validator.Validate(body, &payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if payload.NameZH != "云端酒店" {
		t.Errorf("expected decoded name, got %q", payload.NameZH)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	payload := listingPayload{}

	err := validator.Validate(strings.NewReader("{not json"), &payload)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := failure.GetCode(err); code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("[2024-01-01,2026-01-01)", "daterange"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-a-range", "daterange"); err == nil {
		t.Error("expected error, got nil")
	}
}
