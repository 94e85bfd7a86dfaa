package domain

import (
	"context"
	"time"
)

// Company is an employer's company page. The storage layer enforces one
// company per employer with a unique index on employer_id.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	EmployerID  string    `json:"employerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CompanyPatch is a presence-tagged partial update for PUT /companies/:id.
type CompanyPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByEmployerID(ctx context.Context, employerID string) (*Company, error)
	Fetch(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, employerID string, company *Company) error
	GetCompany(ctx context.Context, id string) (*Company, error)
	GetCompanyByEmployer(ctx context.Context, employerID string) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	UpdateCompany(ctx context.Context, employerID, id string, patch CompanyPatch) (*Company, error)
	DeleteCompany(ctx context.Context, employerID, id string) error
}
