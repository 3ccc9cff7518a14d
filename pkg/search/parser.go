package search

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// RawFilters holds the listing filters exactly as they arrived on the query string.
// Each slice collects every value sent for the category, across all accepted keys.
type RawFilters struct {
	Tags           []string
	TimeSignatures []string
	Sizes          []string
	Query          string
}

// NoteFilters is the normalized form of RawFilters.
type NoteFilters struct {
	TagIds             []int64
	TagNames           []string
	TimeSignatureIds   []int64
	TimeSignatureNames []string
	SizeNames          []string // matched against time signature names only
	FreeText           string
}

func (f NoteFilters) HasTagFilter() bool {
	return len(f.TagIds) > 0 || len(f.TagNames) > 0
}

func (f NoteFilters) HasTimeSignatureFilter() bool {
	return len(f.TimeSignatureIds) > 0 || len(f.TimeSignatureNames) > 0 || len(f.SizeNames) > 0
}

func (f NoteFilters) HasFreeText() bool {
	return f.FreeText != ""
}

// ParseFilters normalizes raw filter input. It never fails: values it cannot
// understand simply contribute no tokens.
func ParseFilters(raw RawFilters) NoteFilters {
	filters := NoteFilters{
		FreeText: strings.TrimSpace(raw.Query),
	}

	filters.TagIds, filters.TagNames = SplitIdsAndNames(Tokenize(raw.Tags...))
	filters.TimeSignatureIds, filters.TimeSignatureNames = SplitIdsAndNames(Tokenize(raw.TimeSignatures...))
	filters.SizeNames = Tokenize(raw.Sizes...)

	return filters
}

// Tokenize flattens scalar, comma-separated and JSON-array values into one
// ordered list of trimmed, non-empty, unique tokens.
func Tokenize(values ...string) []string {
	var tokens []string
	seen := make(map[string]struct{})

	add := func(token string) {
		token = strings.TrimSpace(token)
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if strings.HasPrefix(value, "[") {
			for _, token := range parseJSONList(value) {
				add(token)
			}
			continue
		}

		for _, part := range strings.Split(value, ",") {
			add(part)
		}
	}

	return tokens
}

// parseJSONList decodes a JSON array into string tokens. Malformed input yields nil.
// Numbers keep their literal digits so large ids survive the round trip.
func parseJSONList(value string) []string {
	dec := json.NewDecoder(strings.NewReader(value))
	dec.UseNumber()

	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil
	}
	// trailing content after the array is as malformed as a broken array
	if _, err := dec.Token(); err != io.EOF {
		return nil
	}

	var tokens []string
	var walk func(items []interface{})
	walk = func(items []interface{}) {
		for _, item := range items {
			switch v := item.(type) {
			case string:
				tokens = append(tokens, v)
			case json.Number:
				tokens = append(tokens, numberToken(v))
			case []interface{}:
				walk(v)
			}
		}
	}
	walk(items)

	return tokens
}

// numberToken keeps integer literals verbatim and normalizes fractions and
// exponents, so 2.0 and 2e0 both read as "2".
func numberToken(n json.Number) string {
	literal := n.String()
	if !strings.ContainsAny(literal, ".eE") {
		return literal
	}
	f, err := n.Float64()
	if err != nil {
		return literal
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// SplitIdsAndNames separates tokens that are exact integer literals from the rest.
// "12" is an id, while "012", "12a" and "4/4" are names.
func SplitIdsAndNames(tokens []string) ([]int64, []string) {
	var ids []int64
	var names []string

	for _, token := range tokens {
		if id, ok := ParseId(token); ok {
			ids = append(ids, id)
			continue
		}
		names = append(names, token)
	}

	return ids, names
}

// ParseId reports whether token round-trips exactly through integer parsing.
func ParseId(token string) (int64, bool) {
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	if strconv.FormatInt(id, 10) != token {
		return 0, false
	}
	return id, true
}
