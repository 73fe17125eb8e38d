package service

import "strings"

var allowedSortBy = map[string]string{
	"name":       "name",
	"size":       "size",
	"type":       "type",
	"path":       "path",
	"id":         "id",
	"createdat":  "created_at",
	"updatedat":  "updated_at",
	"mimetype":   "mime_type",
	"created_at": "created_at",
	"updated_at": "updated_at",
	"mime_type":  "mime_type",
}

// sanitizeSortBy maps a caller-supplied sort key to a real column, falling
// back to name. Keeps user input out of the ORDER BY clause.
func sanitizeSortBy(sortBy string) string {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if column, ok := allowedSortBy[key]; ok {
		return column
	}
	return "name"
}
