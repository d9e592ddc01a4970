package dto

import (
	"github.com/go-playground/validator/v10"

	"cast-match/internal/search"
)

type SearchRequest struct {
	Query     string           `json:"query"`
	Fields    []string         `json:"fields" validate:"dive,required"`
	Records   []map[string]any `json:"records"`
	Threshold *float64         `json:"threshold" validate:"omitempty,min=0,max=1"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

func (r SearchRequest) ToRecords() []search.Record {
	out := make([]search.Record, 0, len(r.Records))
	for _, rec := range r.Records {
		out = append(out, search.Record(rec))
	}
	return out
}

type SearchResponse struct {
	Results []map[string]any `json:"results"`
}

func NewSearchResponse(records []search.Record) SearchResponse {
	out := SearchResponse{Results: make([]map[string]any, 0, len(records))}
	for _, rec := range records {
		out.Results = append(out.Results, map[string]any(rec))
	}
	return out
}
