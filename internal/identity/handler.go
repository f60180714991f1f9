package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/middleware"
	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/response"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

// Handler exposes the identity service over HTTP.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes wires the identity HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, h *Handler, codec *auth.Codec, users middleware.UserFinder) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api/users")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/password-reset-request", h.RequestPasswordReset)
		api.POST("/password-reset", h.ResetPassword)

		// Service-to-service lookup used by directory enrichment.
		api.GET("/:id", h.GetUser)

		authed := api.Group("")
		authed.Use(middleware.RequireUser(codec, users))
		{
			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
			authed.POST("/logout", h.Logout)
			authed.GET("", middleware.RequireRoles(auth.RoleAdmin), h.ListUsers)
		}
	}
}

type registerRequest struct {
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=8"`
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	Role           string   `json:"role" binding:"omitempty,oneof=USER PROFESSIONAL ADMIN"`
	Profession     string   `json:"profession"`
	Experience     *int     `json:"experience"`
	Qualifications []string `json:"qualifications"`
	Services       []string `json:"services"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		Bio:            req.Bio,
		Role:           auth.Role(req.Role),
		Profession:     req.Profession,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
		Services:       req.Services,
	})
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user.Summary())
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		response.Failure(c, h.log, apperr.ErrAuthRequired)
		return
	}
	c.JSON(http.StatusOK, user.Summary())
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		response.Failure(c, h.log, apperr.ErrAuthRequired)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), user.ID, store.ProfileUpdate{
		Name:           req.Name,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated.Summary())
}

// Logout is stateless: the client discards its token. There is no server-side
// blacklist.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logout successful", nil)
}

type passwordResetRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.Failure(c, h.log, err)
		return
	}
	// Same answer whether or not the email exists.
	response.Success(c, http.StatusOK, "If an account with that email exists, a password reset email has been sent", nil)
}

type passwordResetBody struct {
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req passwordResetBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		response.Failure(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset successfully", nil)
}

// GetUser answers service-to-service lookups with a user summary.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Failure(c, h.log, apperr.Validation("Invalid user id"))
		return
	}
	user, err := h.svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user.Summary())
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	response.Success(c, http.StatusOK, "", summaries)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
