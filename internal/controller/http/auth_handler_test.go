package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sky-archive/internal/entity"
	"sky-archive/internal/usecase"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, email, plainPassword string, role entity.Role) (*entity.TokenPair, error) {
	args := m.Called(ctx, username, email, plainPassword, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TokenPair), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, plainPassword string) (*entity.TokenPair, error) {
	args := m.Called(ctx, email, plainPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TokenPair), args.Error(1)
}

func (m *MockAuthUseCase) CurrentUser(ctx context.Context, subject string) (*entity.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ListUsers(ctx context.Context, cursorID string, limit int64) ([]*entity.User, error) {
	args := m.Called(ctx, cursorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_Created(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/user/register", handler.Register)

	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", Role: entity.RoleUser}
	mockUseCase.On("Register", mock.Anything, "alice", "a@b.com", "s3cret1", entity.Role("")).Return(pair, nil)

	w := postJSON(router, "/user/register", map[string]string{
		"username": "alice",
		"email":    "a@b.com",
		"password": "s3cret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var got entity.TokenPair
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, entity.RoleUser, got.Role)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/user/register", handler.Register)

	mockUseCase.On("Register", mock.Anything, "alice", "a@b.com", "s3cret1", entity.Role("")).Return(nil, entity.ErrEmailTaken)

	w := postJSON(router, "/user/register", map[string]string{
		"username": "alice",
		"email":    "a@b.com",
		"password": "s3cret1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterHandler_InvalidEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/user/register", handler.Register)

	w := postJSON(router, "/user/register", map[string]string{
		"username": "alice",
		"email":    "not-an-email",
		"password": "s3cret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_UniformError(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/user/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "unknown@b.com", "whatever").Return(nil, entity.ErrInvalidCredentials)
	mockUseCase.On("Login", mock.Anything, "known@b.com", "wrong").Return(nil, entity.ErrInvalidCredentials)

	unknown := postJSON(router, "/user/login", map[string]string{"email": "unknown@b.com", "password": "whatever"})
	wrongPass := postJSON(router, "/user/login", map[string]string{"email": "known@b.com", "password": "wrong"})

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPass.Body.String())
	assert.Contains(t, unknown.Body.String(), "Incorrect email or password")
}

func TestLoginHandler_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/user/login", handler.Login)

	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", Role: entity.RoleAdmin}
	mockUseCase.On("Login", mock.Anything, "a@b.com", "s3cret1").Return(pair, nil)

	w := postJSON(router, "/user/login", map[string]string{"email": "a@b.com", "password": "s3cret1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "refresh")
}

func TestMeHandler_HidesPassword(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/user/me", func(c *gin.Context) {
		c.Set(currentUserKey, &entity.User{
			ID:       "66b0f0000000000000000001",
			Username: "alice",
			Email:    "a@b.com",
			Password: "bcrypt-hash",
			Role:     entity.RoleUser,
		})
		handler.Me(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/user/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
	assert.NotContains(t, w.Body.String(), "bcrypt-hash")
}

func TestListUsersHandler_UnknownCursor(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/user/all", handler.ListUsers)

	mockUseCase.On("ListUsers", mock.Anything, "66b0f0000000000000000009", int64(20)).Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/user/all?cursor=66b0f0000000000000000009", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
