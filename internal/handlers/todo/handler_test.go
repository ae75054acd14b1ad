package todo_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"todolist/infras/otel/mocks"
	"todolist/internal/domains/todo/model/dto"
	serviceMocks "todolist/internal/domains/todo/service/mocks"
	"todolist/internal/handlers/todo"
	"todolist/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockTodo, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockTodo(ctrl)

	handler := todo.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandler_CreateTodo(t *testing.T) {
	created := dto.TodoResponse{ID: 1, Text: "Buy milk", Completed: false, CreatedAt: "2024-01-02T03:04:05Z"}

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"text":"Buy milk"}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateTodoRequest{Text: "Buy milk"}).Return(created, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"id":1,"text":"Buy milk","completed":false,"created_at":"2024-01-02T03:04:05Z"}}`,
		},
		{
			name:      "blank text",
			body:      `{"text":"   "}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			body:      `{"text":`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"text":"Buy milk"}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TodoResponse{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := do(router, http.MethodPost, "/v1/rpc/createTodo", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetTodos(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any()).Return([]dto.TodoResponse{
			{ID: 2, Text: "second", CreatedAt: "2024-01-02T00:00:00Z"},
			{ID: 1, Text: "first", Completed: true, CreatedAt: "2024-01-01T00:00:00Z"},
		}, nil)

		recorder := do(router, http.MethodGet, "/v1/rpc/getTodos", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[
			{"id":2,"text":"second","completed":false,"created_at":"2024-01-02T00:00:00Z"},
			{"id":1,"text":"first","completed":true,"created_at":"2024-01-01T00:00:00Z"}
		]}`, recorder.Body.String())
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any()).Return([]dto.TodoResponse{}, nil)

		recorder := do(router, http.MethodGet, "/v1/rpc/getTodos", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := do(router, http.MethodPost, "/v1/rpc/getTodos", "")

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}

func TestHandler_UpdateTodo(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
		wantBody  string
	}{
		{
			name: "updated",
			body: `{"id":5,"completed":true}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
						assert.Equal(t, int64(5), req.ID)
						assert.True(t, *req.Completed)

						return dto.TodoResponse{ID: 5, Text: "Walk dog", Completed: true, CreatedAt: "2024-01-01T00:00:00Z"}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"id":5,"text":"Walk dog","completed":true,"created_at":"2024-01-01T00:00:00Z"}}`,
		},
		{
			name: "not found",
			body: `{"id":99,"completed":false}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(dto.TodoResponse{}, failure.ErrTodoNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"todo not found"}`,
		},
		{
			name:      "missing completed",
			body:      `{"id":5}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid id",
			body:      `{"id":0,"completed":true}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := do(router, http.MethodPost, "/v1/rpc/updateTodo", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	tests := []struct {
		name     string
		success  bool
		wantBody string
	}{
		{name: "removed", success: true, wantBody: `{"data":{"success":true}}`},
		{name: "unknown id", success: false, wantBody: `{"data":{"success":false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().
				Delete(gomock.Any(), dto.DeleteTodoRequest{ID: 3}).
				Return(dto.DeleteTodoResponse{Success: tt.success}, nil)

			recorder := do(router, http.MethodPost, "/v1/rpc/deleteTodo", `{"id":3}`)

			assert.Equal(t, http.StatusOK, recorder.Code)
			if diff := cmp.Diff(tt.wantBody, strings.TrimSpace(recorder.Body.String())); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := do(router, http.MethodPost, "/v1/rpc/deleteTodo", `{"id":-1}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
