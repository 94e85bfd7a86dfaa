package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC    domain.AuthUsecase
	profileUC domain.ProfileUsecase
}

// NewUserHandler registers account and profile routes
func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, profileUC domain.ProfileUsecase) {
	handler := &UserHandler{authUC: authUC, profileUC: profileUC}

	users := public.Group("/users")
	{
		// Credential endpoints carry the strict limiter
		users.POST("/register", middleware.StrictRateLimitMiddleware(), handler.Register)
		users.POST("/login", middleware.StrictRateLimitMiddleware(), handler.Login)
		users.GET("/companies", handler.ListCompanies)
	}

	me := protected.Group("/users")
	{
		me.GET("/me", handler.Me)
		me.GET("/profile", handler.GetProfile)
		me.PUT("/profile", handler.UpdateProfile)
	}
}

// JobseekerPayload is the optional jobseeker section of the registration form.
type JobseekerPayload struct {
	Title           string `json:"title"`
	Skills          string `json:"skills"`
	Experience      string `json:"experience"`
	EducationLevel  string `json:"educationLevel"`
	LinkedinProfile string `json:"linkedinProfile"`
}

// EmployerPayload is the optional employer section of the registration form.
type EmployerPayload struct {
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyDescription string `json:"companyDescription"`
}

type RegisterRequest struct {
	FirstName string            `json:"firstName" binding:"required,valid_name"`
	LastName  string            `json:"lastName" binding:"required,valid_name"`
	Email     string            `json:"email" binding:"required,email"`
	Password  string            `json:"password" binding:"required,min=6"`
	Role      string            `json:"role"`
	UserType  string            `json:"userType"` // legacy alias for role
	Profile   *JobseekerPayload `json:"profile"`
	Company   *EmployerPayload  `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Create an account with a jobseeker or employer role, returns a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response{data=domain.AuthResult}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	role := req.UserType
	if role == "" {
		role = req.Role
	}

	input := domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
	}
	if req.Profile != nil {
		input.Jobseeker = &domain.JobseekerProfile{
			Title:           req.Profile.Title,
			Skills:          req.Profile.Skills,
			Experience:      req.Profile.Experience,
			Education:       req.Profile.EducationLevel,
			LinkedinProfile: req.Profile.LinkedinProfile,
		}
	}
	if req.Company != nil {
		input.Employer = &domain.EmployerProfile{
			CompanyName:        req.Company.CompanyName,
			Industry:           req.Company.Industry,
			CompanySize:        req.Company.CompanySize,
			CompanyWebsite:     req.Company.CompanyWebsite,
			CompanyDescription: req.Company.CompanyDescription,
		}
	}

	result, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", result)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email, password and role, returns a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200  {object}  response.Response{data=domain.AuthResult}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the public projection of the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PublicUser}
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user.Public())
}

// GetProfile godoc
// @Summary      Get profile
// @Description  Returns the role-projected profile of the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partial update of the authenticated user's profile. Fields outside the caller's role are ignored.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        patch  body      domain.ProfilePatch  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), userID, patch); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", nil)
}

// ListCompanies godoc
// @Summary      List employer companies
// @Description  Public feed of companies derived from employer accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.EmployerListing}
// @Router       /users/companies [get]
func (h *UserHandler) ListCompanies(c *gin.Context) {
	listings, err := h.profileUC.ListEmployerCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved", listings)
}
