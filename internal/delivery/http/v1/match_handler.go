package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

// NewMatchHandler registers match routes
func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	matches := r.Group("/matches")
	{
		matches.GET("", handler.List)
		matches.POST("", handler.Create)
		matches.GET("/my-matches", handler.MyMatches)
		matches.GET("/jobs/:jobId", handler.ListByJob)
		matches.GET("/users/:userId", handler.ListByUser)
	}
}

// CreateMatchRequest is the request payload for direct match creation
type CreateMatchRequest struct {
	UserID string `json:"userId" binding:"required"`
	JobID  string `json:"jobId" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=matched viewed applied"`
}

// Create godoc
// @Summary      Create a match
// @Description  Match a talent to a job directly, bypassing the application flow (Admin only)
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        body  body      CreateMatchRequest  true  "Match data"
// @Success      201   {object}  response.Response{data=domain.Match}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /matches [post]
// @Security     BearerAuth
func (h *MatchHandler) Create(c *gin.Context) {
	matchedBy := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can create matches"))
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	match, err := h.matchUC.CreateMatch(c.Request.Context(), req.UserID, req.JobID, matchedBy, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Match created successfully", gin.H{"match": match})
}

// List godoc
// @Summary      List all matches
// @Description  List every match in the system (Admin only)
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Match}
// @Failure      403  {object}  response.Response
// @Router       /matches [get]
// @Security     BearerAuth
func (h *MatchHandler) List(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list matches"))
		return
	}

	matches, err := h.matchUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// MyMatches godoc
// @Summary      Get my matches
// @Description  Get the current talent's matches
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Match}
// @Failure      403  {object}  response.Response
// @Router       /matches/my-matches [get]
// @Security     BearerAuth
func (h *MatchHandler) MyMatches(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleTalent {
		c.Error(apperror.Forbidden("Only talents can view their matches"))
		return
	}

	matches, err := h.matchUC.ListForTalent(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// ListByJob godoc
// @Summary      List matches for a job
// @Description  List all matches for a specific job (Admin only)
// @Tags         matches
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Match}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /matches/jobs/{jobId} [get]
// @Security     BearerAuth
func (h *MatchHandler) ListByJob(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list job matches"))
		return
	}

	matches, err := h.matchUC.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// ListByUser godoc
// @Summary      List matches for a user
// @Description  List all matches for a specific talent (Admin only)
// @Tags         matches
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.Match}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /matches/users/{userId} [get]
// @Security     BearerAuth
func (h *MatchHandler) ListByUser(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list user matches"))
		return
	}

	matches, err := h.matchUC.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}
