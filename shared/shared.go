package shared

import (
	"strings"

	"todolist/shared/dto"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and parts into a colon separated key, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				Field: fieldID,
				Value: id,
				Table: table,
			},
		},
	}
}
