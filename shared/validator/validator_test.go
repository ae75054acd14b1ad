package validator_test

import (
	"strings"
	"testing"

	"todolist/shared/validator"
)

// Test structs for validation
type noteRequest struct {
	Text     string `json:"text"     validate:"required,notblank"`
	Priority int    `json:"priority" validate:"gte=0,lte=5"`
	Category string `json:"category" validate:"omitempty,oneof=home work"`
}

type toggleRequest struct {
	ID        int64 `json:"id"        validate:"required,gt=0"`
	Completed *bool `json:"completed" validate:"required"`
}

func boolPtr(b bool) *bool {
	return &b
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *noteRequest
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        &noteRequest{Text: "Buy milk", Priority: 1, Category: "home"},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        &noteRequest{Priority: 1},
			expectError: true,
		},
		{
			name:        "blank text",
			data:        &noteRequest{Text: "   \t"},
			expectError: true,
		},
		{
			name:        "priority out of range",
			data:        &noteRequest{Text: "Buy milk", Priority: 9},
			expectError: true,
		},
		{
			name:        "invalid category",
			data:        &noteRequest{Text: "Buy milk", Category: "garden"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct_PointerBool(t *testing.T) {
	tests := []struct {
		name        string
		data        *toggleRequest
		expectError bool
	}{
		{
			name:        "explicit false is accepted",
			data:        &toggleRequest{ID: 1, Completed: boolPtr(false)},
			expectError: false,
		},
		{
			name:        "missing completed is rejected",
			data:        &toggleRequest{ID: 1},
			expectError: true,
		},
		{
			name:        "zero id is rejected",
			data:        &toggleRequest{Completed: boolPtr(true)},
			expectError: true,
		},
		{
			name:        "negative id is rejected",
			data:        &toggleRequest{ID: -3, Completed: boolPtr(true)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"text":"Buy milk","priority":2,"category":"home"}`,
			expectError: false,
		},
		{
			name:        "invalid value",
			jsonBody:    `{"text":"Buy milk","priority":7}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"text":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data noteRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Messages name fields by their json tag.
func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		wantMsg string
	}{
		{
			name:    "required text",
			data:    &noteRequest{},
			wantMsg: "text is required",
		},
		{
			name:    "blank text",
			data:    &noteRequest{Text: " "},
			wantMsg: "text must not be blank",
		},
		{
			name:    "missing completed",
			data:    &toggleRequest{ID: 2},
			wantMsg: "completed is required",
		},
		{
			name:    "negative id",
			data:    &toggleRequest{ID: -1, Completed: boolPtr(true)},
			wantMsg: "id must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			switch data := tt.data.(type) {
			case *noteRequest:
				err = validator.ValidateStruct(data)
			case *toggleRequest:
				err = validator.ValidateStruct(data)
			}

			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
