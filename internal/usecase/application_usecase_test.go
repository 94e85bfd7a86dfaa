package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeJob() *domain.Job {
	expiry := time.Now().Add(24 * time.Hour)
	return &domain.Job{ID: "job1", EmployerID: "emp1", ExpiresAt: &expiry}
}

func TestApply(t *testing.T) {
	t.Run("Resume is mandatory", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))

		_, err := uc.Apply(context.Background(), "js1", "job1", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Resume is required")
	})

	t.Run("Expired job rejects applications", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs)

		past := time.Now().Add(-time.Hour)
		mockJobs.On("GetByID", mock.Anything, "job1").
			Return(&domain.Job{ID: "job1", ExpiresAt: &past}, nil)

		_, err := uc.Apply(context.Background(), "js1", "job1", "resume.pdf", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "This job posting has expired")
	})

	t.Run("Duplicate application surfaces the storage conflict", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, "job1").Return(activeJob(), nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(apperror.Conflict("You have already applied for this job"))

		_, err := uc.Apply(context.Background(), "js1", "job1", "resume.pdf", "")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("New application starts pending", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		mockJobs.On("GetByID", mock.Anything, "job1").Return(activeJob(), nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			assert.Equal(t, "js1", app.JobseekerID)
		})

		app, err := uc.Apply(context.Background(), "js1", "job1", "resume.pdf", "cover letter")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})
}

func TestWithdrawOwnership(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo))

	mockApps.On("GetByID", mock.Anything, "app1").
		Return(&domain.Application{ID: "app1", JobseekerID: "js1"}, nil)

	t.Run("Non-owner cannot withdraw", func(t *testing.T) {
		err := uc.Withdraw(context.Background(), "js2", "app1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own applications")
	})

	t.Run("Owner can withdraw", func(t *testing.T) {
		mockApps.On("Delete", mock.Anything, "app1").Return(nil)
		err := uc.Withdraw(context.Background(), "js1", "app1")
		assert.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	pendingApp := func() *domain.Application {
		return &domain.Application{ID: "app1", JobID: "job1", JobseekerID: "js1", Status: domain.ApplicationStatusPending}
	}

	newUC := func(app *domain.Application) (domain.ApplicationUsecase, *MockApplicationRepo) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockApps.On("GetByID", mock.Anything, "app1").Return(app, nil)
		mockJobs.On("GetByID", mock.Anything, "job1").Return(activeJob(), nil)
		return usecase.NewApplicationUsecase(mockApps, mockJobs), mockApps
	}

	t.Run("Unknown status is rejected", func(t *testing.T) {
		uc, _ := newUC(pendingApp())
		err := uc.UpdateStatus(context.Background(), "emp1", "app1", "archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Non-owning employer is rejected even for a valid status", func(t *testing.T) {
		uc, _ := newUC(pendingApp())
		err := uc.UpdateStatus(context.Background(), "emp2", "app1", domain.ApplicationStatusReviewed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job postings")
	})

	t.Run("Pending can move to reviewed", func(t *testing.T) {
		uc, mockApps := newUC(pendingApp())
		mockApps.On("UpdateStatus", mock.Anything, "app1", domain.ApplicationStatusReviewed).Return(nil)

		err := uc.UpdateStatus(context.Background(), "emp1", "app1", domain.ApplicationStatusReviewed)
		assert.NoError(t, err)
	})

	t.Run("Reviewed cannot move back to pending", func(t *testing.T) {
		app := pendingApp()
		app.Status = domain.ApplicationStatusReviewed
		uc, _ := newUC(app)

		err := uc.UpdateStatus(context.Background(), "emp1", "app1", domain.ApplicationStatusPending)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot change status from reviewed to pending")
	})

	t.Run("Terminal states are locked", func(t *testing.T) {
		app := pendingApp()
		app.Status = domain.ApplicationStatusAccepted
		uc, _ := newUC(app)

		err := uc.UpdateStatus(context.Background(), "emp1", "app1", domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot change status from accepted to rejected")
	})
}

func TestGetApplicationAccess(t *testing.T) {
	app := &domain.Application{ID: "app1", JobID: "job1", JobseekerID: "js1"}

	newUC := func() domain.ApplicationUsecase {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockApps.On("GetByID", mock.Anything, "app1").Return(app, nil)
		mockJobs.On("GetByID", mock.Anything, "job1").Return(activeJob(), nil)
		return usecase.NewApplicationUsecase(mockApps, mockJobs)
	}

	t.Run("Applicant can read their application", func(t *testing.T) {
		got, err := newUC().GetApplication(context.Background(), "js1", domain.RoleJobseeker, "app1")
		assert.NoError(t, err)
		assert.Equal(t, "app1", got.ID)
	})

	t.Run("Another jobseeker cannot", func(t *testing.T) {
		_, err := newUC().GetApplication(context.Background(), "js2", domain.RoleJobseeker, "app1")
		assert.Error(t, err)
	})

	t.Run("Job-owning employer can read it", func(t *testing.T) {
		got, err := newUC().GetApplication(context.Background(), "emp1", domain.RoleEmployer, "app1")
		assert.NoError(t, err)
		assert.Equal(t, "app1", got.ID)
	})

	t.Run("Other employers cannot", func(t *testing.T) {
		_, err := newUC().GetApplication(context.Background(), "emp2", domain.RoleEmployer, "app1")
		assert.Error(t, err)
	})
}
