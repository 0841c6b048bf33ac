package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sky-archive/internal/entity"
	"sky-archive/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin disabled"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user with username, email, password and role, returning an access/refresh token pair
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  entity.TokenPair
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Email, req.Password, entity.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		case errors.Is(err, entity.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate by email and password and return an access/refresh token pair
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  entity.TokenPair
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			// One message for unknown email and wrong password.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Me godoc
// @Summary      Get current user
// @Description  Return the authenticated user's record without the password hash
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /user/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		abortUnauthorized(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List users
// @Description  Page through users newest first using a less-than id cursor. Admin only.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        cursor query string false "Id of the last user from the previous page"
// @Param        limit  query int    false "Page size (max 100)"
// @Success      200  {array}   entity.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/all [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	users, err := h.authUseCase.ListUsers(c.Request.Context(), c.Query("cursor"), limit)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cursor user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
