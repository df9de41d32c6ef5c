package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"dailytodo/infras/otel"
	"dailytodo/internal/domains/todo/model/dto"
	"dailytodo/internal/domains/todo/repository"
	"dailytodo/shared/constant"
	"dailytodo/shared/failure"
	gRepo "dailytodo/shared/repository"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	GetAll(ctx context.Context) (dto.TodosResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	insert := s.repo.InsertGenerated
	if req.HasID() {
		insert = s.repo.Insert
	}

	todo, err := insert(ctx, req.ToModel())
	if errors.Is(err, gRepo.ErrDuplicate) {
		if !req.HasID() {
			// the identity sequence handed out an id a client had already taken
			log.Warn().Err(err).Msg("generated todo id already exists")

			return res, failure.Conflict("Todo with the generated ID already exists try again") //nolint:wrapcheck
		}

		log.Warn().Int64("id", *req.ID).Msg("todo id already exists")

		return res, failure.Conflictf("Todo with ID %d already exists try another id", *req.ID) //nolint:wrapcheck
	}

	if errors.Is(err, gRepo.ErrInvalidData) {
		return res, failure.BadRequestFromString("content must be between 1 and 255 characters") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	scope.SetAttribute("todo.id", todo.ID)
	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, id)
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFoundf("Todo with ID %d not found.", id) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.TodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(todos)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = s.repo.Replace(ctx, id, req.ToFields())
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFoundf("Todo with ID %d not found", id) //nolint:wrapcheck
	}

	if errors.Is(err, gRepo.ErrInvalidData) {
		return failure.BadRequestFromString("content must be between 1 and 255 characters") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFoundf("Todo with ID %d not found", id) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteAll(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	removed, err := s.repo.DeleteAll(ctx)
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFound("No Todo items found in the database") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to delete all todos")

		return fmt.Errorf("failed to delete all todos: %w", err)
	}

	log.Info().Int64("removed", removed).Msg("deleted all todos")

	return nil
}
