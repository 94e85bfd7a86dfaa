package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	appUC domain.ApplicationUsecase
}

// NewJobHandler registers job posting routes. Listing and detail are
// public; everything else requires an authenticated role.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, appUC: appUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
	}

	owned := protected.Group("/jobs")
	{
		owned.POST("", handler.Create)
		owned.GET("/employer", handler.ListMine)
		owned.DELETE("/:id", handler.Delete)
		owned.POST("/:id/apply", handler.Apply)
		owned.GET("/:id/applications", handler.ListApplications)
	}
}

type CreateJobRequest struct {
	Title        string     `json:"title" binding:"required"`
	Company      string     `json:"company" binding:"required"`
	Location     string     `json:"location" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Requirements []string   `json:"requirements"`
	Salary       string     `json:"salary"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

type ApplyRequest struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
}

// List godoc
// @Summary      List jobs
// @Description  Returns active (non-expired) job postings, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// Get godoc
// @Summary      Get job
// @Description  Returns a single job posting by id, including expired ones
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Create godoc
// @Summary      Create job
// @Description  Employer-only. Creates a posting; expiry defaults to 30 days out.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job Details"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can post jobs"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		ExpiresAt:    req.ExpiresAt,
	}

	employerID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), employerID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// ListMine godoc
// @Summary      List own jobs
// @Description  Employer-only. Returns the caller's postings, including expired ones.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /jobs/employer [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view their job postings"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	jobs, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), employerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// Delete godoc
// @Summary      Delete job
// @Description  Employer-only. Deletes one of the caller's own postings.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can delete jobs"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), employerID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// Apply godoc
// @Summary      Apply for job
// @Description  Jobseeker-only. Submits an application; one per job per jobseeker.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id           path      string        true  "Job ID"
// @Param        application  body      ApplyRequest  true  "Application Details"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can apply for jobs"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobseekerID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.Apply(c.Request.Context(), jobseekerID, c.Param("id"), req.Resume, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListApplications godoc
// @Summary      List job applications
// @Description  Employer-only. Returns applications for one of the caller's own postings.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) ListApplications(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view job applications"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.ListForJob(c.Request.Context(), employerID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
