package specification

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a lower-cased LIKE pattern matching s anywhere,
// with LIKE wildcards in s taken literally.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// containsClause is the portable form of "column ILIKE %s%" (works on Postgres and SQLite).
func containsClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}
