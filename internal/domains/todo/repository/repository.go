package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dailytodo/infras/otel"
	"dailytodo/infras/postgres"
	"dailytodo/internal/domains/todo/model"
	"dailytodo/shared"
	gDto "dailytodo/shared/dto"
	gRepo "dailytodo/shared/repository"
)

// Todo is the todo store. Misses are reported as repository.ErrNotFound and
// duplicate ids as repository.ErrDuplicate.
type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	InsertGenerated(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Replace(ctx context.Context, id int64, fields model.TodoFields) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Insert stores todo under its own id.
func (r *repositoryImpl) Insert(ctx context.Context, todo model.Todo) (model.Todo, error) {
	return r.Repository.Insert(ctx, todo) //nolint:wrapcheck
}

// InsertGenerated stores todo under an id assigned by the database.
func (r *repositoryImpl) InsertGenerated(ctx context.Context, todo model.Todo) (model.Todo, error) {
	return r.Repository.Insert(ctx, todo, model.FieldContent, model.FieldCompleted) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Todo, error) {
	return r.Repository.Get(ctx, byID(id)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	return r.Repository.GetAll(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Replace(ctx context.Context, id int64, fields model.TodoFields) (model.Todo, error) {
	return r.Repository.Update(ctx, fields.Values(), byID(id)) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.Repository.Delete(ctx, byID(id)) //nolint:wrapcheck
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}
