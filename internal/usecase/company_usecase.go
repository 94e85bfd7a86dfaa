package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, employerID string, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}

	company.EmployerID = employerID
	// One company per employer: the unique index on employer_id turns a
	// second create into a Conflict.
	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetCompanyByEmployer(ctx context.Context, employerID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByEmployerID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return u.companyRepo.Fetch(ctx)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, employerID, id string, patch domain.CompanyPatch) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	if company.EmployerID != employerID {
		return nil, apperror.Forbidden("You can only update your own company profile")
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&company.Name, patch.Name)
	apply(&company.Description, patch.Description)
	apply(&company.Logo, patch.Logo)
	apply(&company.Website, patch.Website)
	apply(&company.Location, patch.Location)

	if company.Name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, employerID, id string) error {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	if company.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own company profile")
	}
	return u.companyRepo.Delete(ctx, id)
}
