package dto

import (
	"fmt"
	"strings"

	"todolist/shared/constant"
)

type Sort struct {
	Column string
	Dir    string
	Table  string
}

func (s Sort) clause() string {
	column := s.Column
	if s.Table != "" {
		column = fmt.Sprintf("%s.%s", s.Table, s.Column)
	}

	dir := strings.ToUpper(s.Dir)
	if dir != constant.SortDirAsc {
		dir = constant.SortDirDesc
	}

	return column + " " + dir
}

// QueryParams carries the ordering applied to a multi-row select.
type QueryParams struct {
	Sorts []Sort
}

// OrderBy renders the ORDER BY clause, or "" when no sort is set.
func (q *QueryParams) OrderBy() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	clauses := make([]string, 0, len(q.Sorts))
	for _, sort := range q.Sorts {
		if sort.Column == "" {
			continue
		}

		clauses = append(clauses, sort.clause())
	}

	if len(clauses) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(clauses, ", ")
}
