package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - listings only show active jobs (server-side enforced)
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes - admin job management
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PATCH("/:id/deactivate", handler.Deactivate)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

// CreateJobRequest is the request payload for creating a job
type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required,max=100"`
	Description    string   `json:"description" binding:"required,max=3000"`
	Location       string   `json:"location" binding:"required,max=100"`
	RequiredSkills []string `json:"requiredSkills" binding:"required,min=1,dive,max=200"`
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (Admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	// 1. Role Check
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can create jobs"))
		return
	}

	// 2. Bind JSON
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// 3. Get User ID from context (AuthMiddleware)
	userID := c.GetString(string(domain.KeyUserID))

	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", gin.H{"job": job})
}

// List godoc
// @Summary      List active jobs
// @Description  List active job postings with pagination (public)
// @Tags         jobs
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":  jobs,
		"count": total,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a single job posting by id (public)
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", gin.H{"job": job})
}

// Deactivate godoc
// @Summary      Deactivate a job
// @Description  Mark a job inactive so it stops accepting applications (Admin only)
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/deactivate [patch]
// @Security     BearerAuth
func (h *JobHandler) Deactivate(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can deactivate jobs"))
		return
	}

	if err := h.jobUC.DeactivateJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deactivated", nil)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently remove a job posting (Admin only)
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can delete jobs"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
