package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCompany(t *testing.T) {
	t.Run("Should fail without a name", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		err := uc.CreateCompany(context.Background(), "emp1", &domain.Company{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company name is required")
	})

	t.Run("Second create surfaces the storage conflict", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).
			Return(apperror.Conflict("You already have a company profile"))

		err := uc.CreateCompany(context.Background(), "emp1", &domain.Company{Name: "Acme"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("EmployerID is forced from the caller", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).
			Return(nil).Run(func(args mock.Arguments) {
			company := args.Get(1).(*domain.Company)
			assert.Equal(t, "emp1", company.EmployerID)
		})

		err := uc.CreateCompany(context.Background(), "emp1", &domain.Company{
			Name:       "Acme",
			EmployerID: "someone_else",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateCompany(t *testing.T) {
	stored := func() *domain.Company {
		return &domain.Company{
			ID:          "co1",
			Name:        "Acme",
			Description: "Old description",
			EmployerID:  "emp1",
		}
	}

	t.Run("Non-owner is rejected", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "co1").Return(stored(), nil)

		_, err := uc.UpdateCompany(context.Background(), "emp2", "co1", domain.CompanyPatch{
			Name: strptr("Hijacked"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own company profile")
	})

	t.Run("Patch applies provided fields and keeps the rest", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "co1").Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil)

		company, err := uc.UpdateCompany(context.Background(), "emp1", "co1", domain.CompanyPatch{
			Description: strptr(""),
			Website:     strptr("https://acme.example"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
		assert.Equal(t, "", company.Description)
		assert.Equal(t, "https://acme.example", company.Website)
	})

	t.Run("Name cannot be cleared", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "co1").Return(stored(), nil)

		_, err := uc.UpdateCompany(context.Background(), "emp1", "co1", domain.CompanyPatch{
			Name: strptr(""),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company name is required")
	})
}

func TestDeleteCompanyOwnership(t *testing.T) {
	mockRepo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "co1").
		Return(&domain.Company{ID: "co1", EmployerID: "emp1"}, nil)

	t.Run("Non-owner cannot delete", func(t *testing.T) {
		err := uc.DeleteCompany(context.Background(), "emp2", "co1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own company profile")
	})

	t.Run("Owner can delete", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, "co1").Return(nil)
		err := uc.DeleteCompany(context.Background(), "emp1", "co1")
		assert.NoError(t, err)
	})
}
