package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "no values",
			values: nil,
			want:   nil,
		},
		{
			name:   "scalar",
			values: []string{"jazz"},
			want:   []string{"jazz"},
		},
		{
			name:   "comma separated with blanks",
			values: []string{" 1, 2 ,,jazz "},
			want:   []string{"1", "2", "jazz"},
		},
		{
			name:   "json array of numbers and strings",
			values: []string{`[2, "5", "4/4"]`},
			want:   []string{"2", "5", "4/4"},
		},
		{
			name:   "nested json array is flattened",
			values: []string{`[[1, 2], ["jazz"]]`},
			want:   []string{"1", "2", "jazz"},
		},
		{
			name:   "malformed json contributes nothing",
			values: []string{"[1,2"},
			want:   nil,
		},
		{
			name:   "malformed json does not affect other values",
			values: []string{"[1,2", "7"},
			want:   []string{"7"},
		},
		{
			name:   "repeated values keep first-seen order without duplicates",
			values: []string{"3", "1,3", `["1", 9]`},
			want:   []string{"3", "1", "9"},
		},
		{
			name:   "json integers beyond float precision keep their digits",
			values: []string{`[9007199254740993]`, "9007199254740993"},
			want:   []string{"9007199254740993"},
		},
		{
			name:   "json fractions and exponents are normalized",
			values: []string{`[2.0, 3e0, 1.5]`},
			want:   []string{"2", "3", "1.5"},
		},
		{
			name:   "trailing content after json array contributes nothing",
			values: []string{`[1] [2]`},
			want:   nil,
		},
		{
			name:   "json booleans and nulls are ignored",
			values: []string{`[true, null, "blues"]`},
			want:   []string{"blues"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.values...))
		})
	}
}

func TestParseId(t *testing.T) {
	tests := []struct {
		token  string
		wantId int64
		wantOk bool
	}{
		{"12", 12, true},
		{"0", 0, true},
		{"12a", 0, false},
		{"4/4", 0, false},
		{"012", 0, false},
		{"+5", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			id, ok := ParseId(tt.token)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantId, id)
		})
	}
}

func TestParseFilters(t *testing.T) {
	t.Run("mixed ids and names per category", func(t *testing.T) {
		f := ParseFilters(RawFilters{
			Tags:           []string{"2,jazz", "5"},
			TimeSignatures: []string{`["3", "6/8"]`},
			Sizes:          []string{"4/4,7"},
			Query:          "  noct  ",
		})

		assert.Equal(t, []int64{2, 5}, f.TagIds)
		assert.Equal(t, []string{"jazz"}, f.TagNames)
		assert.Equal(t, []int64{3}, f.TimeSignatureIds)
		assert.Equal(t, []string{"6/8"}, f.TimeSignatureNames)
		// sizes never become ids
		assert.Equal(t, []string{"4/4", "7"}, f.SizeNames)
		assert.Equal(t, "noct", f.FreeText)

		assert.True(t, f.HasTagFilter())
		assert.True(t, f.HasTimeSignatureFilter())
		assert.True(t, f.HasFreeText())
	})

	t.Run("empty input means no filters", func(t *testing.T) {
		f := ParseFilters(RawFilters{Query: "   "})

		assert.False(t, f.HasTagFilter())
		assert.False(t, f.HasTimeSignatureFilter())
		assert.False(t, f.HasFreeText())
	})

	t.Run("large json ids stay ids", func(t *testing.T) {
		f := ParseFilters(RawFilters{Tags: []string{`[9007199254740993]`}})

		assert.Equal(t, []int64{9007199254740993}, f.TagIds)
		assert.Empty(t, f.TagNames)
	})

	t.Run("malformed tag json behaves as no tag filter", func(t *testing.T) {
		f := ParseFilters(RawFilters{Tags: []string{"[1,2"}})

		assert.False(t, f.HasTagFilter())
	})
}
