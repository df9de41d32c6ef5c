package router

import (
	_ "dailytodo/docs"
	"dailytodo/internal/handlers/index"
	"dailytodo/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Index index.Handler
	Todo  todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Index.Router(router)
	r.DomainHandlers.Todo.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
