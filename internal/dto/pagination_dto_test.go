package dto

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name       string
		rawPage    string
		rawLimit   string
		want       PageRequest
		wantOffset int
	}{
		{"defaults", "", "", PageRequest{Page: 1, Limit: 10}, 0},
		{"explicit", "3", "20", PageRequest{Page: 3, Limit: 20}, 40},
		{"limit capped", "1", "51", PageRequest{Page: 1, Limit: 50}, 0},
		{"zero and negative fall back", "0", "-5", PageRequest{Page: 1, Limit: 10}, 0},
		{"non-numeric falls back", "two", "1.5", PageRequest{Page: 1, Limit: 10}, 0},
		{"huge page saturates the offset", strconv.Itoa(math.MaxInt), "10", PageRequest{Page: math.MaxInt, Limit: 10}, math.MaxInt},
		{"largest page that fits", strconv.Itoa(math.MaxInt/50 + 1), "50", PageRequest{Page: math.MaxInt/50 + 1, Limit: 50}, math.MaxInt / 50 * 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageRequest(tt.rawPage, tt.rawLimit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, got.Offset())
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  PageRequest
		want  PageMeta
	}{
		{"empty", 0, PageRequest{Page: 1, Limit: 10}, PageMeta{TotalItems: 0, TotalPages: 0, CurrentPage: 1, Limit: 10}},
		{"exact pages", 20, PageRequest{Page: 2, Limit: 10}, PageMeta{TotalItems: 20, TotalPages: 2, CurrentPage: 2, Limit: 10}},
		{"partial last page", 25, PageRequest{Page: 3, Limit: 10}, PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 3, Limit: 10}},
		{"page past the end is echoed", 25, PageRequest{Page: 9, Limit: 10}, PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 9, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageMeta(tt.total, tt.page))
		})
	}
}
