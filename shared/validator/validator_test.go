package validator_test

import (
	"dailytodo/shared/failure"
	"dailytodo/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10"`
	Rank    int    `json:"rank"    validate:"gte=0,lte=5"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        noteRequest
		expectError string
	}{
		{
			name: "valid struct",
			data: noteRequest{Content: "groceries", Rank: 1},
		},
		{
			name:        "missing content",
			data:        noteRequest{Rank: 1},
			expectError: "content is required",
		},
		{
			name:        "content too long",
			data:        noteRequest{Content: "eleven chars"},
			expectError: "content must be at most 10 characters",
		},
		{
			name:        "rank out of range",
			data:        noteRequest{Content: "ok", Rank: 9},
			expectError: "rank must be less than or equal to 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectError, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_CountsCharactersNotBytes(t *testing.T) {
	data := noteRequest{Content: strings.Repeat("é", 10)}

	assert.NoError(t, validator.ValidateStruct(&data))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"content":"bread","rank":2}`, expectError: false},
		{name: "invalid field", jsonBody: `{"content":"","rank":2}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"content":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
		{name: "empty body", jsonBody: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data noteRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
