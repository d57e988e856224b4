package domain

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE metacharacters so that text is matched
// literally. The result is meant to be wrapped in % for substring search.
func EscapeLike(text string) string {
	return likeEscaper.Replace(text)
}

// ContainsPattern builds an ILIKE pattern matching text as a literal substring.
func ContainsPattern(text string) string {
	return "%" + EscapeLike(text) + "%"
}
