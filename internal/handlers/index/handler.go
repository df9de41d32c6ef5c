package index

import (
	"net/http"

	"dailytodo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
}

// Index reports that the service is up.
// @Summary Liveness check
// @Tags Index
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (handler *Handler) Index(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, map[string]string{"Hello": "World"})
}
