package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"dailytodo/shared/constant"
	"dailytodo/shared/failure"
	"dailytodo/shared/logger"
)

type Error struct {
	Detail string `json:"detail"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends the payload as the whole response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message. Only the message of a
// wrapped failure.Failure reaches the client, and 5xx bodies are generic.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	detail := constant.ResponseErrorInternal

	var fail *failure.Failure
	if errors.As(err, &fail) && code < http.StatusInternalServerError {
		detail = fail.Message
	}

	response(writer, code, Error{Detail: detail})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Detail: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Detail: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
