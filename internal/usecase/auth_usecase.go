package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the original per-record random-salt cost factor.
const bcryptCost = 10

// Emails are stored and matched lowercase; the unique index is on
// LOWER(email).
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, apperror.BadRequest("All fields are required")
	}
	if !domain.ValidRole(input.Role) {
		return nil, apperror.BadRequest("Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	// Role-scoped payload: the form for the other role is ignored, never
	// merged into the record.
	switch input.Role {
	case domain.RoleJobseeker:
		user.Jobseeker = input.Jobseeker
	case domain.RoleEmployer:
		user.Employer = input.Employer
	}
	user.EnsureProfile()

	// Duplicate email surfaces as a Conflict from the unique index.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a password mismatch so callers cannot
			// enumerate registered emails.
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, apperror.Internal(err)
	}

	// The role-mismatch message names the correct role so the client can
	// redirect to the right login form. This leaks account existence.
	if user.Role != role {
		return nil, apperror.Unauthorized(fmt.Sprintf("Invalid account type. Please login as a %s", user.Role))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
