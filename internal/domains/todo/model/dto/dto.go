package dto

import (
	"dailytodo/internal/domains/todo/model"
)

type CreateTodoRequest struct {
	ID        *int64 `json:"id,omitempty" example:"10"`
	Content   string `json:"content"      example:"Buy groceries" validate:"required,min=1,max=255"`
	Completed bool   `json:"completed"    example:"false"`
}

// HasID reports whether the client picked the primary key.
func (c *CreateTodoRequest) HasID() bool {
	return c.ID != nil
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	todo := model.Todo{
		Content:   c.Content,
		Completed: c.Completed,
	}

	if c.ID != nil {
		todo.ID = *c.ID
	}

	return todo
}

// UpdateTodoRequest replaces every mutable field of a todo. An id in the body
// is not decoded; the path id identifies the record.
type UpdateTodoRequest struct {
	Content   string `json:"content"   example:"Updated content" validate:"required,min=1,max=255"`
	Completed bool   `json:"completed" example:"true"`
}

func (u *UpdateTodoRequest) ToFields() model.TodoFields {
	return model.TodoFields{
		Content:   u.Content,
		Completed: u.Completed,
	}
}

type TodoResponse struct {
	ID        int64  `json:"id"        example:"10"`
	Content   string `json:"content"   example:"Buy groceries"`
	Completed bool   `json:"completed" example:"false"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Content = model.Content
	r.Completed = model.Completed
}

type TodosResponse []TodoResponse

func (r *TodosResponse) FromModels(models []model.Todo) {
	todos := make(TodosResponse, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	*r = todos
}
