package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.CreateJob(context.Background(), "emp1", &domain.Job{Title: "Go Developer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("Should force EmployerID and default the expiry to 30 days", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "emp1", j.EmployerID)
			if assert.NotNil(t, j.ExpiresAt) {
				assert.WithinDuration(t, time.Now().Add(domain.DefaultJobLifetime), *j.ExpiresAt, time.Minute)
			}
		})

		job := &domain.Job{
			Title:       "Go Developer",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
			EmployerID:  "someone_else", // must be overwritten
		}
		err := uc.CreateJob(context.Background(), "emp1", job)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should keep an explicit expiry", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		expiry := time.Now().Add(48 * time.Hour)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, expiry, *j.ExpiresAt)
		})

		job := &domain.Job{
			Title:       "Go Developer",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
			ExpiresAt:   &expiry,
		}
		err := uc.CreateJob(context.Background(), "emp1", job)
		assert.NoError(t, err)
	})
}

func TestDeleteJobOwnership(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "job1").
		Return(&domain.Job{ID: "job1", EmployerID: "emp1"}, nil)

	t.Run("Non-owner cannot delete", func(t *testing.T) {
		err := uc.DeleteJob(context.Background(), "emp2", "job1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job postings")
	})

	t.Run("Owner can delete", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, "job1").Return(nil)
		err := uc.DeleteJob(context.Background(), "emp1", "job1")
		assert.NoError(t, err)
	})
}

func TestGetJobStillReturnsExpired(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	past := time.Now().Add(-time.Hour)
	mockRepo.On("GetByID", mock.Anything, "job1").
		Return(&domain.Job{ID: "job1", ExpiresAt: &past}, nil)

	// Detail pages keep working after expiry; only the listing hides the job.
	job, err := uc.GetJob(context.Background(), "job1")
	assert.NoError(t, err)
	assert.True(t, job.Expired(time.Now()))
}

func TestGetJobNotFound(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := uc.GetJob(context.Background(), "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
}
