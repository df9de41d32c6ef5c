package todo

import (
	"fmt"
	"net/http"

	"dailytodo/infras/otel"
	"dailytodo/internal/domains/todo/model/dto"
	"dailytodo/internal/domains/todo/service"
	"dailytodo/shared"
	"dailytodo/shared/constant"
	"dailytodo/shared/validator"
	"dailytodo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Delete("/", handler.DeleteTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a todo item. The id is optional; the database assigns one when it is omitted.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 200 {object} dto.TodoResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/ [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Todo %d created successfully", todo.ID))

	response.WithJSON(writer, http.StatusOK, todo)
}

// GetTodos retrieves all todo items.
// @Summary Get all todo items
// @Description Retrieve every todo item ordered by id.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse "List of todo items"
// @Failure 500 {object} response.Error
// @Router /todos/ [get]
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(writer, http.StatusOK, todos)
}

// GetTodoByID retrieves a todo item by its ID.
// @Summary Get a todo item by ID
// @Description Retrieve a todo item by its unique identifier.
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Todo item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
func (handler *Handler) GetTodoByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(writer, http.StatusOK, todo)
}

// UpdateTodo replaces an existing todo item by its ID.
// @Summary Update a todo item by ID
// @Description Replace the content and completion flag of an existing todo item. An id in the body is ignored.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} response.Message "Todo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
func (handler *Handler) UpdateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithMessage(writer, http.StatusOK, "Todo updated successfully")
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo item by ID
// @Description Delete a todo item using its unique identifier.
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Message "Todo deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithMessage(writer, http.StatusOK, fmt.Sprintf("Todo with ID %d deleted successfully", id))
}

// DeleteTodos deletes every todo item.
// @Summary Delete all todo items
// @Description Empty the todo table.
// @Tags Todo
// @Produce json
// @Success 200 {object} response.Message "All Todo items deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/ [delete]
func (handler *Handler) DeleteTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodos")
	defer scope.End()

	if err := handler.service.DeleteAll(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete all todos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("All todos deleted successfully")

	response.WithMessage(writer, http.StatusOK, "All Todo items deleted successfully")
}
