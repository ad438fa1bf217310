package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	validate *validator.Validate
}

// NewAuthHandler registers auth routes. Login gets the strict rate limiter.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	validate := validator.New()
	validation.RegisterValidators(validate)

	handler := &AuthHandler{authUC: authUC, validate: validate}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", loginLimiter, handler.Login)
	}

	protected.GET("/auth/me", handler.Me)
}

// RegisterRequest is the request payload for account registration
type RegisterRequest struct {
	Name     string   `json:"name" binding:"required" validate:"required,min=2,max=50,valid_name"`
	Email    string   `json:"email" binding:"required,email" validate:"required,email"`
	Password string   `json:"password" binding:"required,min=6,max=72" validate:"required,min=6,max=72"`
	Role     string   `json:"role" binding:"omitempty,oneof=talent admin"`
	Location string   `json:"location" binding:"omitempty,max=100"`
	Skills   []string `json:"skills" binding:"omitempty,dive,max=200"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a talent or admin account and return a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		msgs := validation.FormatErrors(err)
		c.Error(apperror.BadRequest(msgs[0]))
		return
	}

	user, token, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Location: req.Location,
		Skills:   req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// LoginRequest is the request payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate by email and password, returning a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
