package repository

import (
	"context"

	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/internal/domains/todo/model"
	gDto "todolist/shared/dto"
	gRepo "todolist/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Todo, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Todo, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
