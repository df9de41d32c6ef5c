package shared_test

import (
	"dailytodo/shared"
	"dailytodo/shared/dto"
	"dailytodo/shared/failure"
	"errors"
	"reflect"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{name: "positive integer", input: "10", expected: 10},
		{name: "zero", input: "0", expected: 0},
		{name: "negative integer", input: "-3", expected: -3},
		{name: "surrounding spaces", input: " 42 ", expected: 42},
		{name: "empty string", input: "", expectError: true},
		{name: "not a number", input: "abc", expectError: true},
		{name: "float", input: "1.5", expectError: true},
		{name: "overflow", input: "9223372036854775808", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ParseID(tt.input)

			if tt.expectError {
				if !errors.Is(err, failure.InvalidIDParam) {
					t.Errorf("expected InvalidIDParam, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      123,
			fieldID: "id",
			table:   "todos",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "todos",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      456,
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(456),
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			where, args := result.GetWhereClause()
			if where == "" {
				t.Error("expected non-empty where clause")
			}

			if args[tt.fieldID] != tt.id {
				t.Errorf("expected arg %s to be %d, got %v", tt.fieldID, tt.id, args[tt.fieldID])
			}
		})
	}
}
