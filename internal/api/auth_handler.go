package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
	"github.com/playvenue/sports-booking-backend/internal/user"
)

// AuthHandler serves signup and login under /api/auth.
type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var body SignupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, err)
		return
	}

	u, err := h.userService.Signup(c.Request.Context(), user.SignupRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Phone:    body.Phone,
		Role:     user.Role(body.Role),
		Address:  body.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User registered successfully", NewUserResponse(u))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, err)
		return
	}

	u, err := h.userService.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithToken(c, http.StatusOK, "User logged in successfully", token, NewUserResponse(u))
}

// RegisterAuthRoutes mounts the auth endpoints on the API group.
func RegisterAuthRoutes(g *gin.RouterGroup, h *AuthHandler) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}
