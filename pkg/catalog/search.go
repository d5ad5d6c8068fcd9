package catalog

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern builds a case-insensitive containment pattern for
// "LOWER(col) LIKE ? ESCAPE '\'". Wildcards typed by the user match literally.
func LikePattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

// Tally counts the records of one catalog by availability.
type Tally struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"disponibles"`
	Unavailable int64 `json:"noDisponibles"`
}
