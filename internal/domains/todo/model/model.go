package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldContent   = "content"
	FieldCompleted = "completed"

	ContentMaxLength = 255
)

type Todo struct {
	ID        int64  `db:"id"`
	Content   string `db:"content"`
	Completed bool   `db:"completed"`
}

// TodoFields are the columns an update overwrites. The primary key is never
// part of an update.
type TodoFields struct {
	Content   string
	Completed bool
}

// Values maps the fields onto their column names.
func (f TodoFields) Values() map[string]any {
	return map[string]any{
		FieldContent:   f.Content,
		FieldCompleted: f.Completed,
	}
}
