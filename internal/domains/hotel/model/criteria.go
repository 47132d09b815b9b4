package model

// SearchCriteria carries the public catalog filters. Zero values mean the
// filter is not applied.
type SearchCriteria struct {
	Keyword  string
	MinStar  int
	CheckIn  string
	MinPrice string
	MaxPrice string
	Page     int
	Limit    int
}
