package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/entity"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchUseCase is a mock implementation of SearchUseCase
type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) SearchUsers(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.UserSummary, entity.Pagination, error) {
	args := m.Called(ctx, query, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.Pagination), args.Error(2)
	}
	return args.Get(0).([]*entity.UserSummary), args.Get(1).(entity.Pagination), args.Error(2)
}

func (m *MockSearchUseCase) SearchPosts(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error) {
	args := m.Called(ctx, query, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.Pagination), args.Error(2)
	}
	return args.Get(0).([]*entity.PostView), args.Get(1).(entity.Pagination), args.Error(2)
}

func TestSearchUsers_Success(t *testing.T) {
	mockUseCase := new(MockSearchUseCase)
	handler := NewSearchHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/search", func(c *gin.Context) {
		c.Set("user_id", uint(1))
		handler.SearchUsers(c)
	})

	mockUseCase.On("SearchUsers", mock.Anything, "ali", uint(1), 1, 20).
		Return([]*entity.UserSummary{
			{ID: 2, Username: "alice", IsFollowing: true},
			{ID: 3, Username: "salim"},
		}, entity.Pagination{Page: 1, Limit: 20, HasMore: false}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/search?q=ali", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	users := response["users"].([]interface{})
	assert.Equal(t, 2, len(users))
	first := users[0].(map[string]interface{})
	assert.Equal(t, "alice", first["username"])
	assert.Equal(t, true, first["is_following"])

	mockUseCase.AssertExpectations(t)
}

func TestSearchUsers_BlankQuery(t *testing.T) {
	mockUseCase := new(MockSearchUseCase)
	handler := NewSearchHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/search", handler.SearchUsers)

	mockUseCase.On("SearchUsers", mock.Anything, "", uint(0), 1, 20).
		Return(nil, entity.Pagination{}, entity.ErrInvalidQuery)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPosts_Success(t *testing.T) {
	mockUseCase := new(MockSearchUseCase)
	handler := NewSearchHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/search", handler.SearchPosts)

	mockUseCase.On("SearchPosts", mock.Anything, "gopher", uint(0), 1, 20).
		Return([]*entity.PostView{
			{Post: entity.Post{ID: 4, Content: "gopher pics"}, LikeCount: 2},
		}, entity.Pagination{Page: 1, Limit: 20, HasMore: false}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/search?q=gopher", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gopher pics")
	mockUseCase.AssertExpectations(t)
}
