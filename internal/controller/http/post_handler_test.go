package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mini-blog/internal/entity"
	"mini-blog/internal/usecase"
	"mini-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(authorID uint, title, content string) (*entity.Post, error) {
	args := m.Called(authorID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID uint) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(postID, userID uint, title, content string) (*entity.Post, error) {
	args := m.Called(postID, userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID, userID uint) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockPostUseCase) LikePost(postID, userID uint, isLike bool) error {
	args := m.Called(postID, userID, isLike)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID uint, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser(7, handler.CreatePost))

	mockUseCase.On("CreatePost", uint(7), "First post", "Hello world").Return(&entity.Post{
		ID:       1,
		Title:    "First post",
		Content:  "Hello world",
		AuthorID: 7,
	}, nil)

	body := `{"title":"First post","content":"Hello world"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.Post
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "First post", response.Title)
	assert.Equal(t, uint(7), response.AuthorID)

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MissingTitle(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser(7, handler.CreatePost))

	body := `{"content":"Hello world"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", asUser(7, handler.ListPosts))

	mockPosts := []*entity.Post{
		{ID: 1, Title: "Post 1", AuthorID: 7},
		{ID: 2, Title: "Post 2", AuthorID: 8},
	}
	mockUseCase.On("ListPosts").Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []entity.Post
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", asUser(7, handler.GetPost))

	mockUseCase.On("GetPost", uint(1)).Return(&entity.Post{
		ID:       1,
		Title:    "First post",
		Content:  "Hello world",
		AuthorID: 7,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.Post
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "First post", response.Title)
	assert.Equal(t, "Hello world", response.Content)
	assert.Equal(t, uint(7), response.AuthorID)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", asUser(7, handler.GetPost))

	mockUseCase.On("GetPost", uint(99)).Return(nil, errors.New("post not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/99", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPost_InvalidID(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", asUser(7, handler.GetPost))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/not-a-number", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "GetPost", mock.Anything)
}

func TestUpdatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser(7, handler.UpdatePost))

	mockUseCase.On("UpdatePost", uint(1), uint(7), "New title", "New content").Return(&entity.Post{
		ID:       1,
		Title:    "New title",
		Content:  "New content",
		AuthorID: 7,
	}, nil)

	body := `{"title":"New title","content":"New content"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The update response echoes only id, title and content
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["id"])
	assert.Equal(t, "New title", response["title"])
	assert.Equal(t, "New content", response["content"])
	assert.NotContains(t, response, "author_id")

	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser(8, handler.UpdatePost))

	mockUseCase.On("UpdatePost", uint(1), uint(8), "New title", "New content").Return(nil, errors.New("you are not the author of this post"))

	body := `{"title":"New title","content":"New content"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser(7, handler.UpdatePost))

	mockUseCase.On("UpdatePost", uint(99), uint(7), "New title", "New content").Return(nil, errors.New("post not found"))

	body := `{"title":"New title","content":"New content"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/99", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser(7, handler.DeletePost))

	mockUseCase.On("DeletePost", uint(1), uint(7)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post deleted successfully", response["message"])
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser(8, handler.DeletePost))

	mockUseCase.On("DeletePost", uint(1), uint(8)).Return(errors.New("you are not the author of this post"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser(7, handler.DeletePost))

	mockUseCase.On("DeletePost", uint(99), uint(7)).Return(errors.New("post not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/99", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikePost_Added(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(8, handler.LikePost))

	mockUseCase.On("LikePost", uint(1), uint(8), true).Return(nil)

	body := `{"is_like":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Like added successfully", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestLikePost_Removed(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(8, handler.LikePost))

	mockUseCase.On("LikePost", uint(1), uint(8), false).Return(nil)

	// The message follows the submitted value even for a brand-new row
	body := `{"is_like":false}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Like removed successfully", response["message"])
}

func TestLikePost_OwnPost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(7, handler.LikePost))

	mockUseCase.On("LikePost", uint(1), uint(7), true).Return(errors.New("you cannot like your own post"))

	body := `{"is_like":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You cannot like your own post")
}

func TestLikePost_PostNotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(8, handler.LikePost))

	mockUseCase.On("LikePost", uint(99), uint(8), true).Return(errors.New("post not found"))

	body := `{"is_like":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/99/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikePost_MissingIsLike(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(8, handler.LikePost))

	body := `{}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "LikePost", mock.Anything, mock.Anything, mock.Anything)
}
