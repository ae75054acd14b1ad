package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todolist/infras/otel"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/service"
	"todolist/shared/constant"
	"todolist/shared/validator"
	"todolist/transport/http/response"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts one route per procedure under /rpc.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/rpc", func(routerGroup chi.Router) {
		routerGroup.Post("/"+constant.ProcedureCreateTodo, handler.CreateTodo)
		routerGroup.Get("/"+constant.ProcedureGetTodos, handler.GetTodos)
		routerGroup.Post("/"+constant.ProcedureUpdateTodo, handler.UpdateTodo)
		routerGroup.Post("/"+constant.ProcedureDeleteTodo, handler.DeleteTodo)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a todo
// @Description Insert a todo with the given text. It starts out not completed.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} response.Data[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rpc/createTodo [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("todo.id", todo.ID)
	scope.AddEvent("Todo created successfully")

	response.WithJSON(writer, http.StatusCreated, todo)
}

// GetTodos lists every todo item.
// @Summary List todos
// @Description Return all todos, newest first.
// @Tags Todo
// @Produce json
// @Success 200 {object} response.Data[[]dto.TodoResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rpc/getTodos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// UpdateTodo sets the completion flag of an existing todo item.
// @Summary Update a todo
// @Description Set completed on the todo with the given id. Text and created_at never change.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} response.Data[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rpc/updateTodo [post]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", req.ID).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo
// @Description Remove the todo with the given id. success is false when no todo had that id.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.DeleteTodoRequest true "Delete Todo Request"
// @Success 200 {object} response.Data[dto.DeleteTodoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rpc/deleteTodo [post]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	req := dto.DeleteTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Delete(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", req.ID).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("todo.deleted", res.Success)

	response.WithJSON(w, http.StatusOK, res)
}
