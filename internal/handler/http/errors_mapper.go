package http

import (
	"errors"
	"net/http"

	"gaia-backend/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
}

// statusFromError resolves a service error to an HTTP status code. Unknown
// errors (driver failures, hashing failures) map to 500.
//
// The fetch endpoint does not consult this table: it answers 404 for every
// failure, not-found and infrastructure alike.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
