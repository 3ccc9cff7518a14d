package dto

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

type PageMeta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

type PageRequest struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=50"`
}

// NewPageRequest parses raw page/limit values. Anything that is not a positive
// integer falls back to the default; limit is capped at MaxLimit.
func NewPageRequest(rawPage, rawLimit string) PageRequest {
	limit := toPositiveInt(rawLimit, DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{
		Page:  toPositiveInt(rawPage, DefaultPage),
		Limit: limit,
	}
}

// Offset saturates at math.MaxInt instead of wrapping, so an absurd page
// still lands past the last row.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func NewPageMeta(totalItems int64, p PageRequest) PageMeta {
	var totalPages int64
	if totalItems > 0 {
		limit := int64(p.Limit)
		totalPages = (totalItems + limit - 1) / limit
	}
	return PageMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: p.Page,
		Limit:       p.Limit,
	}
}

func toPositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
