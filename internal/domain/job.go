package domain

import (
	"context"
	"time"
)

// DefaultJobLifetime is applied when a job is created without an expiry.
const DefaultJobLifetime = 30 * 24 * time.Hour

// Job is an employer-owned posting. Company is the denormalized company
// name string from the posting form, not a foreign key.
type Job struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Salary       string     `json:"salary,omitempty"`
	EmployerID   string     `json:"employerId"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the posting's advisory expiry has passed.
// A job with no expiry never expires.
func (j *Job) Expired(now time.Time) bool {
	return j.ExpiresAt != nil && j.ExpiresAt.Before(now)
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// FetchActive returns jobs whose expiry has not passed, newest first.
	FetchActive(ctx context.Context) ([]Job, error)
	FetchByEmployer(ctx context.Context, employerID string) ([]Job, error)
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID string, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	ListJobsByEmployer(ctx context.Context, employerID string) ([]Job, error)
	DeleteJob(ctx context.Context, employerID, id string) error
}
