package dto

import (
	"fmt"
	"maps"
	"strings"
)

// Filter is one equality predicate bound as a named parameter. ArgName defaults to Field.
type Filter struct {
	ArgName string
	Field   string
	Value   any
	Table   string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	if f.Field == "" {
		return "", map[string]any{}
	}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	return fmt.Sprintf("%s = :%s", column, argName), map[string]any{argName: f.Value}
}

// FilterGroup matches rows satisfying every filter.
type FilterGroup struct {
	Filters []Filter
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " AND ")), args
}
