package shared

import (
	"dailytodo/shared/dto"
	"dailytodo/shared/failure"
	"strconv"
	"strings"
)

// ParseID converts a path parameter into a numeric primary key.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
