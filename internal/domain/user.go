package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles. Role is fixed at registration and never changes.
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleEmployer
}

// User is the identity record. Exactly one of Jobseeker/Employer is
// non-nil, selected by Role at construction.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Jobseeker *JobseekerProfile `json:"jobseeker,omitempty"`
	Employer  *EmployerProfile  `json:"employer,omitempty"`
}

// JobseekerProfile holds the fields that only exist for the jobseeker role.
type JobseekerProfile struct {
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Skills          string `json:"skills"`
	Experience      string `json:"experience"`
	Education       string `json:"education"`
	Resume          string `json:"resume"`
	LinkedinProfile string `json:"linkedinProfile"`
	ContactPhone    string `json:"contactPhone"`
}

// EmployerProfile holds the fields that only exist for the employer role.
type EmployerProfile struct {
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyDescription string `json:"companyDescription"`
	ContactPhone       string `json:"contactPhone"`
	Location           string `json:"location"`
}

// EnsureProfile makes sure the payload matching the role is allocated so
// update paths can always write through the pointer.
func (u *User) EnsureProfile() {
	switch u.Role {
	case RoleJobseeker:
		if u.Jobseeker == nil {
			u.Jobseeker = &JobseekerProfile{}
		}
	case RoleEmployer:
		if u.Employer == nil {
			u.Employer = &EmployerProfile{}
		}
	}
}

// PublicUser is the projection returned from register/login/me.
// It never carries the password hash or role-specific payloads.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// JobseekerProfileView is the GET /users/profile shape for jobseekers.
type JobseekerProfileView struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Skills          string `json:"skills"`
	Experience      string `json:"experience"`
	Education       string `json:"education"`
	LinkedinProfile string `json:"linkedinProfile"`
	ContactPhone    string `json:"contactPhone"`
	Resume          string `json:"resume"`
}

// EmployerProfileView is the GET /users/profile shape for employers.
type EmployerProfileView struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyDescription string `json:"companyDescription"`
	ContactPhone       string `json:"contactPhone"`
	Location           string `json:"location"`
}

// ProjectProfile maps a user to its role view. The projection is total per
// role: no field from the other role ever appears in the output.
func ProjectProfile(u *User) any {
	switch u.Role {
	case RoleJobseeker:
		p := u.Jobseeker
		if p == nil {
			p = &JobseekerProfile{}
		}
		return JobseekerProfileView{
			ID:              u.ID,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			Email:           u.Email,
			Title:           p.Title,
			Bio:             p.Bio,
			Skills:          p.Skills,
			Experience:      p.Experience,
			Education:       p.Education,
			LinkedinProfile: p.LinkedinProfile,
			ContactPhone:    p.ContactPhone,
			Resume:          p.Resume,
		}
	case RoleEmployer:
		p := u.Employer
		if p == nil {
			p = &EmployerProfile{}
		}
		return EmployerProfileView{
			ID:                 u.ID,
			Email:              u.Email,
			CompanyName:        p.CompanyName,
			Industry:           p.Industry,
			CompanySize:        p.CompanySize,
			CompanyWebsite:     p.CompanyWebsite,
			CompanyDescription: p.CompanyDescription,
			ContactPhone:       p.ContactPhone,
			Location:           p.Location,
		}
	}
	return nil
}

// ProfilePatch is a presence-tagged partial update. A nil field was not
// provided; a non-nil empty string clears the stored value. Fields outside
// the caller's role are ignored by UpdateProfile.
type ProfilePatch struct {
	// Shared / jobseeker fields
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Title           *string `json:"title"`
	Bio             *string `json:"bio"`
	Skills          *string `json:"skills"`
	Experience      *string `json:"experience"`
	Education       *string `json:"education"`
	LinkedinProfile *string `json:"linkedinProfile"`
	ContactPhone    *string `json:"contactPhone"`

	// Employer fields
	CompanyName        *string `json:"companyName"`
	Industry           *string `json:"industry"`
	CompanySize        *string `json:"companySize"`
	CompanyWebsite     *string `json:"companyWebsite"`
	CompanyDescription *string `json:"companyDescription"`
	Location           *string `json:"location"`
}

// EmployerListing is one entry of the public GET /users/companies feed,
// derived from employer users that filled in a company name.
type EmployerListing struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyDescription string `json:"companyDescription"`
	Location           string `json:"location"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	FetchEmployerListings(ctx context.Context) ([]EmployerListing, error)
}

// RegisterInput carries everything POST /users/register accepts. The
// role-specific payload mirrors the client registration form and is applied
// only when it matches the chosen role.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Jobseeker *JobseekerProfile
	Employer  *EmployerProfile
}

// AuthResult is the token plus public projection returned by register/login.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password, role string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (any, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) error
	ListEmployerCompanies(ctx context.Context) ([]EmployerListing, error)
}
