package dto

import (
	"todolist/internal/domains/todo/model"
	"todolist/shared/timezone"
)

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// ToModel stores the text as submitted; trimming is left to the caller.
func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		Text:      c.Text,
		Completed: false,
	}
}

type UpdateTodoRequest struct {
	ID        int64 `json:"id" validate:"required,gt=0"`
	Completed *bool `json:"completed" validate:"required"`
}

func (u *UpdateTodoRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldCompleted: *u.Completed,
	}
}

type DeleteTodoRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type TodoResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func (r *TodoResponse) FromModel(mod model.Todo) {
	r.ID = mod.ID
	r.Text = mod.Text
	r.Completed = mod.Completed
	r.CreatedAt = timezone.Timestamp(mod.CreatedAt)
}

// NewTodoResponses keeps the order of models and never returns nil.
func NewTodoResponses(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type DeleteTodoResponse struct {
	Success bool `json:"success"`
}

