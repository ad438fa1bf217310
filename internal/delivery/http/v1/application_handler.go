package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		// Talent routes
		applications.POST("/apply", handler.Apply)
		applications.GET("/my-applications", handler.MyApplications)
		applications.GET("/check/:jobId", handler.CheckStatus)

		// Admin routes
		applications.GET("", handler.List)
		applications.GET("/stats", handler.Stats)
		applications.PATCH("/:id/review", handler.Review)
	}
}

// ApplyRequest is the request payload for applying to a job
type ApplyRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Submit an application for an active job (Talent only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleTalent {
		c.Error(apperror.Forbidden("Only talents can apply for jobs"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), req.JobID, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// MyApplications godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current talent
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleTalent {
		c.Error(apperror.Forbidden("Only talents can view their applications"))
		return
	}

	applications, err := h.applicationUC.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", gin.H{
		"applications": applications,
		"count":        len(applications),
	})
}

// CheckStatus godoc
// @Summary      Check application status
// @Description  Check whether the current talent has applied to a job
// @Tags         applications
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response{data=domain.ApplicationStatusCheck}
// @Failure      400    {object}  response.Response
// @Router       /applications/check/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) CheckStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleTalent {
		c.Error(apperror.Forbidden("Only talents can check application status"))
		return
	}

	check, err := h.applicationUC.CheckStatus(c.Request.Context(), c.Param("jobId"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status retrieved", check)
}

// List godoc
// @Summary      List all applications
// @Description  List applications with pagination and optional status filter (Admin only)
// @Tags         applications
// @Produce      json
// @Param        page    query     int     false  "Page (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  response.Response{data=domain.ApplicationPage}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list applications"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.Error(apperror.BadRequest("Page must be a number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.Error(apperror.BadRequest("Limit must be a number"))
		return
	}

	result, err := h.applicationUC.ListAll(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", gin.H{
		"applications": result.Applications,
		"count":        result.Total,
		"pagination": gin.H{
			"page":  result.Page,
			"pages": result.Pages,
			"total": result.Total,
		},
	})
}

// Stats godoc
// @Summary      Application statistics
// @Description  Application counts per status for the dashboard (Admin only)
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ApplicationStats}
// @Failure      403  {object}  response.Response
// @Router       /applications/stats [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Stats(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can view application statistics"))
		return
	}

	stats, err := h.applicationUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application statistics retrieved", gin.H{"stats": stats})
}

// ReviewRequest is the request payload for reviewing an application
type ReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

// Review godoc
// @Summary      Review an application
// @Description  Update an application's status; a matched review also creates the match record (Admin only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Application ID"
// @Param        body  body      ReviewRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/review [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Review(c *gin.Context) {
	reviewerID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can review applications"))
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, matchOutcome, err := h.applicationUC.Review(c.Request.Context(), c.Param("id"), req.Status, reviewerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application reviewed", gin.H{
		"application":   app,
		"match_outcome": matchOutcome,
	})
}
