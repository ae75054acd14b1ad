package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldText      = "text"
	FieldCompleted = "completed"
	FieldCreatedAt = "created_at"
)

// Todo is one row of the todos table. ID and CreatedAt are assigned by the database.
type Todo struct {
	ID        int64     `db:"id" json:"id" generated:"true"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at" generated:"true"`
}
