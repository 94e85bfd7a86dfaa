package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// applicationTransitions encodes the status machine:
// pending → reviewed | accepted | rejected, reviewed → accepted | rejected.
// accepted and rejected are terminal.
var applicationTransitions = map[string]map[string]bool{
	ApplicationStatusPending: {
		ApplicationStatusReviewed: true,
		ApplicationStatusAccepted: true,
		ApplicationStatusRejected: true,
	},
	ApplicationStatusReviewed: {
		ApplicationStatusAccepted: true,
		ApplicationStatusRejected: true,
	},
}

// CanTransition reports whether an application may move from one status to
// another.
func CanTransition(from, to string) bool {
	return applicationTransitions[from][to]
}

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links one jobseeker to one job. The (job, jobseeker) pair is
// unique, enforced by the storage layer.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	JobseekerID string    `json:"jobseekerId"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`

	// Joined data for list responses
	JobTitle       string `json:"jobTitle,omitempty"`
	JobCompany     string `json:"jobCompany,omitempty"`
	JobLocation    string `json:"jobLocation,omitempty"`
	JobSalary      string `json:"jobSalary,omitempty"`
	ApplicantName  string `json:"applicantName,omitempty"`
	ApplicantEmail string `json:"applicantEmail,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByJobseekerID(ctx context.Context, jobseekerID string) ([]Application, error)
	GetByEmployerID(ctx context.Context, employerID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	// Jobseeker operations
	Apply(ctx context.Context, jobseekerID, jobID, resume, coverLetter string) (*Application, error)
	ListForJobseeker(ctx context.Context, jobseekerID string) ([]Application, error)
	Withdraw(ctx context.Context, jobseekerID, applicationID string) error

	// Employer operations
	ListForJob(ctx context.Context, employerID, jobID string) ([]Application, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID, status string) error

	// Shared: owner (either side) may read a single application.
	GetApplication(ctx context.Context, userID, role, applicationID string) (*Application, error)
}
