package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company page routes. Reads are public,
// writes are employer-only and ownership-checked in the usecase.
func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := public.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.Get)
		companies.GET("/employer/:employerId", handler.GetByEmployer)
	}

	owned := protected.Group("/companies")
	{
		owned.POST("", handler.Create)
		owned.PUT("/:id", handler.Update)
		owned.DELETE("/:id", handler.Delete)
	}
}

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// List godoc
// @Summary      List companies
// @Description  Returns all company pages, sorted by name
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Company}
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved", companies)
}

// Get godoc
// @Summary      Get company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// GetByEmployer godoc
// @Summary      Get company by employer
// @Description  Returns the single company page owned by an employer account
// @Tags         companies
// @Produce      json
// @Param        employerId  path      string  true  "Employer ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/employer/{employerId} [get]
func (h *CompanyHandler) GetByEmployer(c *gin.Context) {
	company, err := h.companyUC.GetCompanyByEmployer(c.Request.Context(), c.Param("employerId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// Create godoc
// @Summary      Create company
// @Description  Employer-only. One company page per employer account.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company Details"
// @Success      201  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can create a company profile"))
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Location:    req.Location,
	}

	employerID := c.GetString(string(domain.KeyUserID))
	if err := h.companyUC.CreateCompany(c.Request.Context(), employerID, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created successfully", company)
}

// Update godoc
// @Summary      Update company
// @Description  Employer-only partial update of the caller's own company page
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id     path      string               true  "Company ID"
// @Param        patch  body      domain.CompanyPatch  true  "Company fields"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can update a company profile"))
		return
	}

	var patch domain.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.UpdateCompany(c.Request.Context(), employerID, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated successfully", company)
}

// Delete godoc
// @Summary      Delete company
// @Description  Employer-only. Deletes the caller's own company page.
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can delete a company profile"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))
	if err := h.companyUC.DeleteCompany(c.Request.Context(), employerID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted successfully", nil)
}
