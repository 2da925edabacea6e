// Package respond centralizes the JSON success and error shaping used by
// every resource handler. Error responses always carry a single short reason
// string; internal error detail is logged server-side and never sent to the
// caller.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes {"error": reason} with the given status and logs the
// underlying cause through the request-scoped logger. Server errors (5xx) log
// at error level, client errors at warn level.
func Error(w http.ResponseWriter, r *http.Request, status int, reason string, err error) {
	if r != nil && err != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(reason)
	}

	JSON(w, status, errorBody{Error: reason})
}
