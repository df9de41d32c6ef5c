package todo_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "dailytodo/infras/otel/mocks"
	"dailytodo/internal/domains/todo/mocks"
	"dailytodo/internal/domains/todo/model/dto"
	"dailytodo/internal/handlers/todo"
	"dailytodo/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockTodoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTodoService(ctrl)

	handler := todo.New(mockService, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request)

	return rec
}

func int64Ptr(i int64) *int64 {
	return &i
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mocks.MockTodoService)
		expectCode int
		expectBody string
	}{
		{
			name: "with id",
			body: `{"id":10,"content":"Buy groceries","completed":false}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateTodoRequest{ID: int64Ptr(10), Content: "Buy groceries"}).
					Return(dto.TodoResponse{ID: 10, Content: "Buy groceries"}, nil)
			},
			expectCode: http.StatusOK,
			expectBody: `{"id":10,"content":"Buy groceries","completed":false}`,
		},
		{
			name: "without id",
			body: `{"content":"buy bread"}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateTodoRequest{Content: "buy bread"}).
					Return(dto.TodoResponse{ID: 1, Content: "buy bread"}, nil)
			},
			expectCode: http.StatusOK,
			expectBody: `{"id":1,"content":"buy bread","completed":false}`,
		},
		{
			name: "duplicate id",
			body: `{"id":10,"content":"Buy groceries"}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.TodoResponse{}, failure.Conflict("Todo with ID 10 already exists try another id"))
			},
			expectCode: http.StatusConflict,
			expectBody: `{"detail":"Todo with ID 10 already exists try another id"}`,
		},
		{
			name:       "missing content",
			body:       `{"id":3}`,
			expectCode: http.StatusBadRequest,
			expectBody: `{"detail":"content is required"}`,
		},
		{
			name:       "content too long",
			body:       `{"content":"` + strings.Repeat("a", 256) + `"}`,
			expectCode: http.StatusBadRequest,
			expectBody: `{"detail":"content must be at most 255 characters"}`,
		},
		{
			name:       "malformed body",
			body:       `{"content":`,
			expectCode: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"content":"x"}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.TodoResponse{}, errors.New("pq: connection refused"))
			},
			expectCode: http.StatusInternalServerError,
			expectBody: `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(router, http.MethodPost, "/todos/", tt.body)

			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectBody != "" {
				assert.JSONEq(t, tt.expectBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GetTodos(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			GetAll(gomock.Any()).
			Return(dto.TodosResponse{{ID: 1, Content: "one"}, {ID: 2, Content: "two", Completed: true}}, nil)

		rec := serve(router, http.MethodGet, "/todos/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"content":"one","completed":false},{"id":2,"content":"two","completed":true}]`, rec.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			GetAll(gomock.Any()).
			Return(dto.TodosResponse{}, nil)

		rec := serve(router, http.MethodGet, "/todos", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})
}

func TestHandler_GetTodoByID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(svc *mocks.MockTodoService)
		expectCode int
		expectBody string
	}{
		{
			name:   "found",
			target: "/todos/10",
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Get(gomock.Any(), int64(10)).
					Return(dto.TodoResponse{ID: 10, Content: "Buy groceries"}, nil)
			},
			expectCode: http.StatusOK,
			expectBody: `{"id":10,"content":"Buy groceries","completed":false}`,
		},
		{
			name:   "not found",
			target: "/todos/404",
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Get(gomock.Any(), int64(404)).
					Return(dto.TodoResponse{}, failure.NotFound("Todo with ID 404 not found."))
			},
			expectCode: http.StatusNotFound,
			expectBody: `{"detail":"Todo with ID 404 not found."}`,
		},
		{
			name:       "non integer id",
			target:     "/todos/abc",
			expectCode: http.StatusBadRequest,
			expectBody: `{"detail":"id must be an integer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}

func TestHandler_UpdateTodo(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setupMock  func(svc *mocks.MockTodoService)
		expectCode int
		expectBody string
	}{
		{
			name:   "path id wins over body id",
			target: "/todos/10",
			body:   `{"id":99,"content":"Updated content","completed":true}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Update(gomock.Any(), dto.UpdateTodoRequest{Content: "Updated content", Completed: true}, int64(10)).
					Return(nil)
			},
			expectCode: http.StatusOK,
			expectBody: `{"message":"Todo updated successfully"}`,
		},
		{
			name:   "not found",
			target: "/todos/404",
			body:   `{"content":"x"}`,
			setupMock: func(svc *mocks.MockTodoService) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(404)).
					Return(failure.NotFound("Todo with ID 404 not found"))
			},
			expectCode: http.StatusNotFound,
			expectBody: `{"detail":"Todo with ID 404 not found"}`,
		},
		{
			name:       "empty content",
			target:     "/todos/1",
			body:       `{"content":""}`,
			expectCode: http.StatusBadRequest,
			expectBody: `{"detail":"content is required"}`,
		},
		{
			name:       "non integer id",
			target:     "/todos/1.5",
			body:       `{"content":"x"}`,
			expectCode: http.StatusBadRequest,
			expectBody: `{"detail":"id must be an integer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

		rec := serve(router, http.MethodDelete, "/todos/10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Todo with ID 10 deleted successfully"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Delete(gomock.Any(), int64(10)).
			Return(failure.NotFound("Todo with ID 10 not found"))

		rec := serve(router, http.MethodDelete, "/todos/10", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Todo with ID 10 not found"}`, rec.Body.String())
	})
}

func TestHandler_DeleteTodos(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().DeleteAll(gomock.Any()).Return(nil)

		rec := serve(router, http.MethodDelete, "/todos/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"All Todo items deleted successfully"}`, rec.Body.String())
	})

	t.Run("empty table", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			DeleteAll(gomock.Any()).
			Return(failure.NotFound("No Todo items found in the database"))

		rec := serve(router, http.MethodDelete, "/todos/", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"No Todo items found in the database"}`, rec.Body.String())
	})
}
