package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"dailytodo/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Recoverer turns a panic in a handler into a 500 with the generic error body.
func (a *appMiddleware) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			//nolint:errorlint,err113
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log.Error().
				Str("panic", fmt.Sprintf("%v", rvr)).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("recovered from panic")

			response.WithError(w, errors.New("panic while handling request"))
		}()

		next.ServeHTTP(w, r)
	})
}
