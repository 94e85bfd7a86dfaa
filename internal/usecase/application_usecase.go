package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application for a job. Duplicate submissions for the
// same (job, jobseeker) pair fail with a Conflict from the storage layer.
func (uc *applicationUsecase) Apply(ctx context.Context, jobseekerID, jobID, resume, coverLetter string) (*domain.Application, error) {
	if resume == "" {
		return nil, apperror.BadRequest("Resume is required to submit an application")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.Expired(time.Now()) {
		return nil, apperror.BadRequest("This job posting has expired")
	}

	app := &domain.Application{
		JobID:       jobID,
		JobseekerID: jobseekerID,
		Resume:      resume,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForJobseeker returns all applications submitted by the jobseeker.
func (uc *applicationUsecase) ListForJobseeker(ctx context.Context, jobseekerID string) ([]domain.Application, error) {
	return uc.applicationRepo.GetByJobseekerID(ctx, jobseekerID)
}

// Withdraw deletes an application. Only the owning jobseeker may withdraw,
// from any status.
func (uc *applicationUsecase) Withdraw(ctx context.Context, jobseekerID, applicationID string) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}
	if app.JobseekerID != jobseekerID {
		return apperror.Forbidden("You can only withdraw your own applications")
	}
	return uc.applicationRepo.Delete(ctx, applicationID)
}

// ListForJob returns applications for one job, employer-owner only.
func (uc *applicationUsecase) ListForJob(ctx context.Context, employerID, jobID string) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("You can only view applications for your own job postings")
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// ListForEmployer returns applications across every job the employer owns.
func (uc *applicationUsecase) ListForEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	return uc.applicationRepo.GetByEmployerID(ctx, employerID)
}

// UpdateStatus moves an application through the status machine. Ownership
// is transitive through the referenced job; terminal states are locked.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, employerID, applicationID, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only manage applications for your own job postings")
	}

	if !domain.CanTransition(app.Status, status) {
		return apperror.BadRequest(fmt.Sprintf("Cannot change status from %s to %s", app.Status, status))
	}

	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
}

// GetApplication returns one application to either owner: the jobseeker who
// submitted it, or the employer owning the referenced job.
func (uc *applicationUsecase) GetApplication(ctx context.Context, userID, role, applicationID string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	switch role {
	case domain.RoleJobseeker:
		if app.JobseekerID != userID {
			return nil, apperror.Forbidden("You can only view your own applications")
		}
	case domain.RoleEmployer:
		job, err := uc.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Job not found")
			}
			return nil, err
		}
		if job.EmployerID != userID {
			return nil, apperror.Forbidden("You can only view applications for your own job postings")
		}
	default:
		return nil, apperror.Forbidden("Unauthorized")
	}

	return app, nil
}
