// Package handlers maps HTTP requests onto the domain services and keeps the
// institute's public wire contract: Portuguese field names, reason strings,
// and status codes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
)

var errInvalidID = errors.New("invalid id in path")

// idFromPath parses the {id} path segment. A non-numeric segment is treated
// as a reference to a record that cannot exist.
func idFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
