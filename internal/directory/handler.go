package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/middleware"
	"github.com/harentsoaR/proconnect-api/internal/response"
)

// Handler exposes the professional directory over HTTP.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes wires the directory HTTP surface onto the router. Creation
// is service-to-service and carries no bearer token; reads are gated on the
// stateless credential check.
func RegisterRoutes(r *gin.Engine, h *Handler, codec *auth.Codec) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api/professionals")
	{
		api.POST("", h.Create)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(codec))
		{
			authed.GET("/all", h.ListAll)
			authed.GET("/me", h.GetMine)
		}
	}
}

type createRequest struct {
	UserID         string   `json:"userId" binding:"required"`
	Profession     string   `json:"profession" binding:"required"`
	Experience     *int     `json:"experience" binding:"required"`
	Qualifications []string `json:"qualifications" binding:"required"`
	Services       []string `json:"services"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindFailure(c, err)
		return
	}

	profile, err := h.svc.Create(c.Request.Context(), CreateInput{
		UserID:         req.UserID,
		Profession:     req.Profession,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
		Services:       req.Services,
	})
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, "Professional profile created successfully.", profile)
}

func (h *Handler) ListAll(c *gin.Context) {
	profiles, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, "", profiles)
}

func (h *Handler) GetMine(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Failure(c, h.log, apperr.ErrAuthRequired)
		return
	}

	profile, err := h.svc.GetMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Failure(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, "", profile)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
