package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/client"
	"todolist/shared/failure"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newServer(t *testing.T, status int, body string) (*client.Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path

		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&recorded.body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return client.NewWithHTTPClient(server.URL+"/", server.Client()), recorded
}

func TestClient_CreateTodo(t *testing.T) {
	c, recorded := newServer(t, http.StatusCreated,
		`{"data":{"id":7,"text":"Buy milk","completed":false,"created_at":"2024-01-02T03:04:05Z"}}`)

	todo, err := c.CreateTodo(context.Background(), "Buy milk")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/v1/rpc/createTodo", recorded.path)
	assert.Equal(t, map[string]any{"text": "Buy milk"}, recorded.body)

	want := client.Todo{ID: 7, Text: "Buy milk", CreatedAt: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)}
	if diff := cmp.Diff(want, todo); diff != "" {
		t.Errorf("todo mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_GetTodos(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		c, recorded := newServer(t, http.StatusOK, `{"data":[
			{"id":2,"text":"second","completed":true,"created_at":"2024-01-02T00:00:00Z"},
			{"id":1,"text":"first","completed":false,"created_at":"2024-01-01T00:00:00Z"}
		]}`)

		todos, err := c.GetTodos(context.Background())

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, recorded.method)
		assert.Equal(t, "/v1/rpc/getTodos", recorded.path)
		assert.Len(t, todos, 2)
		assert.Equal(t, int64(2), todos[0].ID)
		assert.True(t, todos[0].Completed)
	})

	t.Run("empty", func(t *testing.T) {
		c, _ := newServer(t, http.StatusOK, `{"data":[]}`)

		todos, err := c.GetTodos(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestClient_UpdateTodo(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		c, recorded := newServer(t, http.StatusOK,
			`{"data":{"id":3,"text":"Walk dog","completed":true,"created_at":"2024-01-01T00:00:00Z"}}`)

		todo, err := c.UpdateTodo(context.Background(), 3, true)

		require.NoError(t, err)
		assert.Equal(t, "/v1/rpc/updateTodo", recorded.path)
		assert.Equal(t, map[string]any{"id": float64(3), "completed": true}, recorded.body)
		assert.True(t, todo.Completed)
	})

	t.Run("not found", func(t *testing.T) {
		c, _ := newServer(t, http.StatusNotFound, `{"error":"todo not found"}`)

		_, err := c.UpdateTodo(context.Background(), 99, false)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Contains(t, err.Error(), "todo not found")
	})
}

func TestClient_DeleteTodo(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
	}{
		{name: "removed", body: `{"data":{"success":true}}`, wantSuccess: true},
		{name: "unknown id", body: `{"data":{"success":false}}`, wantSuccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorded := newServer(t, http.StatusOK, tt.body)

			success, err := c.DeleteTodo(context.Background(), 4)

			require.NoError(t, err)
			assert.Equal(t, "/v1/rpc/deleteTodo", recorded.path)
			assert.Equal(t, map[string]any{"id": float64(4)}, recorded.body)
			assert.Equal(t, tt.wantSuccess, success)
		})
	}
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	c, _ := newServer(t, http.StatusBadGateway, ``)

	_, err := c.GetTodos(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestClient_Unreachable(t *testing.T) {
	c := client.NewWithHTTPClient("http://127.0.0.1:1", &http.Client{Timeout: time.Second})

	_, err := c.GetTodos(context.Background())

	assert.Error(t, err)
}
