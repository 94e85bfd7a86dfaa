package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo domain.UserRepository
}

func NewProfileUsecase(userRepo domain.UserRepository) domain.ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

// GetProfile returns the role projection of the caller's own record.
func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (any, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return domain.ProjectProfile(user), nil
}

// UpdateProfile applies a presence-tagged patch through the role whitelist.
// Fields outside the caller's role are silently ignored; a provided empty
// string clears the stored value.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	if err := requireSelf(ctx, userID); err != nil {
		return err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	user.EnsureProfile()

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	switch user.Role {
	case domain.RoleJobseeker:
		p := user.Jobseeker
		apply(&user.FirstName, patch.FirstName)
		apply(&user.LastName, patch.LastName)
		apply(&p.Title, patch.Title)
		apply(&p.Bio, patch.Bio)
		apply(&p.Skills, patch.Skills)
		apply(&p.Experience, patch.Experience)
		apply(&p.Education, patch.Education)
		apply(&p.LinkedinProfile, patch.LinkedinProfile)
		apply(&p.ContactPhone, patch.ContactPhone)
	case domain.RoleEmployer:
		p := user.Employer
		apply(&user.FirstName, patch.FirstName)
		apply(&user.LastName, patch.LastName)
		apply(&p.CompanyName, patch.CompanyName)
		apply(&p.Industry, patch.Industry)
		apply(&p.CompanySize, patch.CompanySize)
		apply(&p.CompanyWebsite, patch.CompanyWebsite)
		apply(&p.CompanyDescription, patch.CompanyDescription)
		apply(&p.ContactPhone, patch.ContactPhone)
		apply(&p.Location, patch.Location)
	}

	return u.userRepo.Update(ctx, user)
}

// ListEmployerCompanies is the public company feed derived from employer
// accounts.
func (u *profileUsecase) ListEmployerCompanies(ctx context.Context) ([]domain.EmployerListing, error) {
	return u.userRepo.FetchEmployerListings(ctx)
}

// requireSelf verifies the context identity matches the target user.
func requireSelf(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only access your own profile")
	}
	return nil
}
