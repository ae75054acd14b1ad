package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"todolist/infras/otel"
	"todolist/internal/domains/todo/event"
	"todolist/internal/domains/todo/model"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/repository"
	"todolist/shared"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context) ([]dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, req dto.DeleteTodoRequest) (dto.DeleteTodoResponse, error)
}

type serviceImpl struct {
	repo      repository.Todo
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Todo, publisher event.Publisher, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

// newestFirst orders by creation time with id breaking ties between rows created in the same instant.
var newestFirst = gDto.QueryParams{
	Sorts: []gDto.Sort{
		{Column: model.FieldCreatedAt, Dir: constant.SortDirDesc, Table: model.TableName},
		{Column: model.FieldID, Dir: constant.SortDirDesc, Table: model.TableName},
	},
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.publish(ctx, event.TypeCreated, todo)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, newestFirst, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	scope.SetAttribute("todos.count", len(models))

	return dto.NewTodoResponses(models), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Update(ctx, req.ToFields(), shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", req.ID).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if todo.ID == 0 {
		log.Warn().Int64("id", req.ID).Msg("todo not found")

		return res, failure.ErrTodoNotFound
	}

	s.publish(ctx, event.TypeUpdated, todo)

	res.FromModel(todo)

	return res, nil
}

// Delete reports Success false when no row had the id.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteTodoRequest) (res dto.DeleteTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", req.ID).Msg("failed to delete todo")

		return res, fmt.Errorf("failed to delete todo: %w", err)
	}

	res.Success = affected > 0
	if res.Success {
		s.publish(ctx, event.TypeDeleted, model.Todo{ID: req.ID})
	}

	return res, nil
}

// publish never fails the caller; the row is already committed.
func (s *serviceImpl) publish(ctx context.Context, eventType string, todo model.Todo) {
	if err := s.publisher.Publish(ctx, eventType, todo); err != nil {
		log.Error().Err(err).Str("event", eventType).Int64("id", todo.ID).Msg("failed to publish todo event")
	}
}
