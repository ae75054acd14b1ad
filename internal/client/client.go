// Package client calls the todo procedures over HTTP and unwraps the response envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/internal/domains/todo/model/dto"
	"todolist/shared/constant"
	"todolist/shared/failure"
)

type Todo struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type envelope[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(cfg.Client.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Client.TimeoutSeconds) * time.Second,
	})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) CreateTodo(ctx context.Context, text string) (Todo, error) {
	return call[Todo](ctx, c, http.MethodPost, constant.ProcedureCreateTodo, dto.CreateTodoRequest{Text: text})
}

// GetTodos returns todos newest first.
func (c *Client) GetTodos(ctx context.Context) ([]Todo, error) {
	todos, err := call[[]Todo](ctx, c, http.MethodGet, constant.ProcedureGetTodos, nil)
	if err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []Todo{}
	}

	return todos, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, completed bool) (Todo, error) {
	return call[Todo](ctx, c, http.MethodPost, constant.ProcedureUpdateTodo, dto.UpdateTodoRequest{ID: id, Completed: &completed})
}

// DeleteTodo reports whether a todo was removed.
func (c *Client) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	res, err := call[dto.DeleteTodoResponse](ctx, c, http.MethodPost, constant.ProcedureDeleteTodo, dto.DeleteTodoRequest{ID: id})
	if err != nil {
		return false, err
	}

	return res.Success, nil
}

func call[T any](ctx context.Context, c *Client, method, procedure string, body any) (T, error) {
	var result T

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return result, fmt.Errorf("failed to encode %s request: %w", procedure, err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+constant.RPCPathPrefix+"/"+procedure, reader)
	if err != nil {
		return result, fmt.Errorf("failed to build %s request: %w", procedure, err)
	}

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	start := time.Now()

	response, err := c.httpClient.Do(request)
	if err != nil {
		return result, fmt.Errorf("failed to call %s: %w", procedure, err)
	}
	defer response.Body.Close()

	log.Debug().
		Str("procedure", procedure).
		Int("status", response.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("RPC call")

	var env envelope[T]
	if err = json.NewDecoder(response.Body).Decode(&env); err != nil && response.StatusCode < http.StatusBadRequest {
		return result, fmt.Errorf("failed to decode %s response: %w", procedure, err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		msg := ""
		if env.Error != nil {
			msg = *env.Error
		}

		return result, fmt.Errorf("%s: %w", procedure, failure.FromStatus(response.StatusCode, msg))
	}

	if env.Data != nil {
		result = *env.Data
	}

	return result, nil
}
