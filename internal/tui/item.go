package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/client"
)

const createdDateLayout = "2006-01-02"

type item struct {
	todo client.Todo
}

func (i item) Title() string       { return i.todo.Text }
func (i item) Description() string { return "Created: " + i.todo.CreatedAt.Local().Format(createdDateLayout) }
func (i item) FilterValue() string { return i.todo.Text }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(item)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Text

	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}

	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, mutedStyle.Render(it.Description()))
}
