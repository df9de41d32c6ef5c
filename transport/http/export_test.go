package http

import (
	"context"
	"net/http"
)

func (h *HTTP) SetState(state ServerState) {
	h.setState(state)
}

func (h *HTTP) PrepareServer() *http.Server {
	h.prepareServer()

	return h.server
}

func (h *HTTP) Shutdown(ctx context.Context) {
	h.shutdown(ctx)
}
