package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strptr(s string) *string { return &s }

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo)

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		_, err := uc.GetProfile(authedCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only access your own profile")
	})

	t.Run("Should fail safely when Context UserID is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestProfileRoleProjection(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "js1").Return(&domain.User{
		ID:        "js1",
		Role:      domain.RoleJobseeker,
		FirstName: "Jane",
		Jobseeker: &domain.JobseekerProfile{Title: "Engineer"},
	}, nil)

	profile, err := uc.GetProfile(authedCtx("js1"), "js1")
	assert.NoError(t, err)

	view, ok := profile.(domain.JobseekerProfileView)
	assert.True(t, ok, "jobseeker gets the jobseeker view")
	assert.Equal(t, "Engineer", view.Title)
}

func TestUpdateProfileWhitelist(t *testing.T) {
	t.Run("Jobseeker patch cannot touch employer fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "js1").Return(&domain.User{
			ID:        "js1",
			Role:      domain.RoleJobseeker,
			Jobseeker: &domain.JobseekerProfile{Title: "Old Title"},
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "New Title", u.Jobseeker.Title)
			// The employer variant must stay untouched for a jobseeker
			assert.Nil(t, u.Employer)
		})

		err := uc.UpdateProfile(authedCtx("js1"), "js1", domain.ProfilePatch{
			Title:       strptr("New Title"),
			CompanyName: strptr("Sneaky Corp"),
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Employer patch cannot touch jobseeker fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "emp1").Return(&domain.User{
			ID:       "emp1",
			Role:     domain.RoleEmployer,
			Employer: &domain.EmployerProfile{CompanyName: "Acme"},
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "Acme Ltd", u.Employer.CompanyName)
			assert.Nil(t, u.Jobseeker)
		})

		err := uc.UpdateProfile(authedCtx("emp1"), "emp1", domain.ProfilePatch{
			CompanyName: strptr("Acme Ltd"),
			Title:       strptr("Sneaky Title"),
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty string clears, absent field is left alone", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "js1").Return(&domain.User{
			ID:   "js1",
			Role: domain.RoleJobseeker,
			Jobseeker: &domain.JobseekerProfile{
				Bio:    "Old bio",
				Skills: "Go, SQL",
			},
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "", u.Jobseeker.Bio)
			assert.Equal(t, "Go, SQL", u.Jobseeker.Skills)
		})

		err := uc.UpdateProfile(authedCtx("js1"), "js1", domain.ProfilePatch{
			Bio: strptr(""),
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestListEmployerCompanies(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo)

	mockRepo.On("FetchEmployerListings", mock.Anything).Return([]domain.EmployerListing{
		{ID: "emp1", CompanyName: "Acme"},
	}, nil)

	listings, err := uc.ListEmployerCompanies(context.Background())
	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, "Acme", listings[0].CompanyName)
}
