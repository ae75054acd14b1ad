// Package tui is the terminal front end. Local state only changes after the server
// answers, so the view never shows a row the server has not confirmed.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"todolist/internal/client"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 8
	inputHeight   = 4
	textCharLimit = 500

	actionCreate = "create todo"
)

type TodoClient interface {
	CreateTodo(ctx context.Context, text string) (client.Todo, error)
	GetTodos(ctx context.Context) ([]client.Todo, error)
	UpdateTodo(ctx context.Context, id int64, completed bool) (client.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (bool, error)
}

type (
	todosLoadedMsg struct{ todos []client.Todo }
	todoCreatedMsg struct{ todo client.Todo }
	todoUpdatedMsg struct{ todo client.Todo }
	todoDeletedMsg struct {
		id      int64
		success bool
	}
	failedMsg struct {
		action string
		err    error
	}
)

type keyMap struct {
	add    key.Binding
	toggle key.Binding
	remove key.Binding
	reload key.Binding
	quit   key.Binding
}

var keys = keyMap{
	add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type Model struct {
	client  TodoClient
	timeout time.Duration

	list       list.Model
	input      textinput.Model
	adding     bool
	submitting bool

	width  int
	height int
}

func New(todoClient TodoClient, timeout time.Duration) Model {
	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight-chromeHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle

	extra := func() []key.Binding {
		return []key.Binding{keys.add, keys.toggle, keys.remove, keys.reload}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "What needs to be done?"
	input.CharLimit = textCharLimit

	return Model{
		client:  todoClient,
		timeout: timeout,
		list:    l,
		input:   input,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadTodos()
}

// Todos returns the rows currently shown, in display order.
func (m Model) Todos() []client.Todo {
	items := m.list.Items()
	todos := make([]client.Todo, 0, len(items))

	for _, listItem := range items {
		if it, ok := listItem.(item); ok {
			todos = append(todos, it.todo)
		}
	}

	return todos
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

		return m, nil
	case todosLoadedMsg:
		return m, m.list.SetItems(toItems(msg.todos))
	case todoCreatedMsg:
		m.submitting = false
		m.stopAdding()

		return m, m.list.InsertItem(len(m.list.Items()), item{todo: msg.todo})
	case todoUpdatedMsg:
		if idx := m.indexOf(msg.todo.ID); idx >= 0 {
			return m, m.list.SetItem(idx, item{todo: msg.todo})
		}

		return m, nil
	case todoDeletedMsg:
		if idx := m.indexOf(msg.id); idx >= 0 {
			m.list.RemoveItem(idx)
		}

		if !msg.success {
			log.Warn().Int64("id", msg.id).Msg("todo was already gone on the server")
		}

		return m, nil
	case failedMsg:
		log.Error().Err(msg.err).Str("action", msg.action).Msg("todo request failed")

		if msg.action == actionCreate {
			m.submitting = false
		}

		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}

		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// updateInput keeps the typed text until the server confirms the new row and ignores
// keys while that request is in flight.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		m.submitting = true

		return m, m.createTodo(text)
	case "esc":
		m.stopAdding()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.add):
		m.adding = true
		m.input.SetValue("")
		m.resize()

		return m, m.input.Focus()
	case key.Matches(msg, keys.reload):
		return m, m.loadTodos()
	case key.Matches(msg, keys.toggle):
		if todo, ok := m.selected(); ok {
			return m, m.updateTodo(todo.ID, !todo.Completed)
		}

		return m, nil
	case key.Matches(msg, keys.remove):
		if todo, ok := m.selected(); ok {
			return m, m.deleteTodo(todo.ID)
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m *Model) resize() {
	height := m.height - chromeHeight
	if m.adding {
		height -= inputHeight
	}

	m.list.SetSize(max(m.width-4, 0), max(height, 1))
}

func (m Model) selected() (client.Todo, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return client.Todo{}, false
	}

	return it.todo, true
}

func (m Model) indexOf(id int64) int {
	for idx, listItem := range m.list.Items() {
		if it, ok := listItem.(item); ok && it.todo.ID == id {
			return idx
		}
	}

	return -1
}

func (m Model) completedCount() int {
	count := 0

	for _, todo := range m.Todos() {
		if todo.Completed {
			count++
		}
	}

	return count
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo App"))
	b.WriteString("\n")

	total := len(m.list.Items())

	if total == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("No todos yet!"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Press a to add your first todo, q to quit."))
		b.WriteString("\n")
	} else {
		done := m.completedCount()

		b.WriteString(accentStyle.Render(fmt.Sprintf("Progress: %d of %d completed", done, total)))
		b.WriteString("\n")
		b.WriteString(progressBar(done, total, progressBarWidth))
		b.WriteString("\n\n")
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.adding {
		panel := "Add new todo\n" + m.input.View()
		if m.submitting {
			panel += "\n" + mutedStyle.Render("Saving...")
		}

		b.WriteString(panelStyle.Render(panel))
		b.WriteString("\n")
	}

	return panelStyle.Render(b.String())
}

func (m Model) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadTodos() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()

		todos, err := m.client.GetTodos(ctx)
		if err != nil {
			return failedMsg{action: "load todos", err: err}
		}

		return todosLoadedMsg{todos: todos}
	}
}

func (m Model) createTodo(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()

		todo, err := m.client.CreateTodo(ctx, text)
		if err != nil {
			return failedMsg{action: actionCreate, err: err}
		}

		return todoCreatedMsg{todo: todo}
	}
}

func (m Model) updateTodo(id int64, completed bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()

		todo, err := m.client.UpdateTodo(ctx, id, completed)
		if err != nil {
			return failedMsg{action: "update todo", err: err}
		}

		return todoUpdatedMsg{todo: todo}
	}
}

func (m Model) deleteTodo(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()

		success, err := m.client.DeleteTodo(ctx, id)
		if err != nil {
			return failedMsg{action: "delete todo", err: err}
		}

		return todoDeletedMsg{id: id, success: success}
	}
}

func toItems(todos []client.Todo) []list.Item {
	items := make([]list.Item, len(todos))
	for i, todo := range todos {
		items[i] = item{todo: todo}
	}

	return items
}
