package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, employerID string, job *domain.Job) error {
	if job.Title == "" || job.Company == "" || job.Location == "" || job.Description == "" {
		return apperror.BadRequest("Title, company, location and description are required")
	}

	job.EmployerID = employerID
	if job.ExpiresAt == nil {
		expiry := time.Now().Add(domain.DefaultJobLifetime)
		job.ExpiresAt = &expiry
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// ListJobs returns the public feed. Expired postings are hidden by the
// repository filter.
func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.FetchActive(ctx)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return u.jobRepo.FetchByEmployer(ctx, employerID)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, employerID, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own job postings")
	}
	return u.jobRepo.Delete(ctx, id)
}
