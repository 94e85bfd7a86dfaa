package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. Everything here
// requires authentication; per-application ownership is checked in the
// usecase.
func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	apps := protected.Group("/applications")
	{
		apps.GET("/jobseeker", handler.ListForJobseeker)
		apps.GET("/employer", handler.ListForEmployer)
		apps.GET("/:id", handler.Get)
		apps.PATCH("/:id/status", handler.UpdateStatus)
		apps.DELETE("/:id", handler.Withdraw)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListForJobseeker godoc
// @Summary      List own applications
// @Description  Jobseeker-only. Returns the caller's applications with job summaries.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications/jobseeker [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJobseeker(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can view their applications"))
		return
	}

	jobseekerID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.ListForJobseeker(c.Request.Context(), jobseekerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListForEmployer godoc
// @Summary      List received applications
// @Description  Employer-only. Returns applications across all of the caller's postings.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications/employer [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view received applications"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.ListForEmployer(c.Request.Context(), employerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// Get godoc
// @Summary      Get application
// @Description  Returns one application. Visible to the applicant and to the employer who owns the job.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	app, err := h.appUC.GetApplication(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Employer-only. Moves an application through pending → reviewed → accepted/rejected.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New Status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can update application status"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.UpdateStatus(c.Request.Context(), employerID, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}

// Withdraw godoc
// @Summary      Withdraw application
// @Description  Jobseeker-only. Deletes one of the caller's own applications.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can withdraw applications"))
		return
	}

	jobseekerID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.Withdraw(c.Request.Context(), jobseekerID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn successfully", nil)
}
