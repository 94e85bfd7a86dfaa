package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, role, first_name, last_name, verified, created_at, updated_at,
	title, bio, skills, experience, education, resume, linkedin_profile,
	company_name, industry, company_size, company_website, company_description, contact_phone, location`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.EnsureProfile()

	js := user.Jobseeker
	if js == nil {
		js = &domain.JobseekerProfile{}
	}
	emp := user.Employer
	if emp == nil {
		emp = &domain.EmployerProfile{}
	}
	contactPhone := js.ContactPhone
	if user.Role == domain.RoleEmployer {
		contactPhone = emp.ContactPhone
	}

	query := `INSERT INTO users (id, email, password_hash, role, first_name, last_name, verified, created_at, updated_at,
	              title, bio, skills, experience, education, resume, linkedin_profile,
	              company_name, industry, company_size, company_website, company_description, contact_phone, location)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.FirstName, user.LastName, user.Verified,
		user.CreatedAt, user.UpdatedAt,
		js.Title, js.Bio, js.Skills, js.Experience, js.Education, js.Resume, js.LinkedinProfile,
		emp.CompanyName, emp.Industry, emp.CompanySize, emp.CompanyWebsite, emp.CompanyDescription,
		contactPhone, emp.Location,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepo) getBy(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user         domain.User
		js           domain.JobseekerProfile
		emp          domain.EmployerProfile
		contactPhone string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.FirstName, &user.LastName, &user.Verified,
		&user.CreatedAt, &user.UpdatedAt,
		&js.Title, &js.Bio, &js.Skills, &js.Experience, &js.Education, &js.Resume, &js.LinkedinProfile,
		&emp.CompanyName, &emp.Industry, &emp.CompanySize, &emp.CompanyWebsite, &emp.CompanyDescription,
		&contactPhone, &emp.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	// Hydrate only the variant matching the role; columns for the other
	// role are simply unused.
	switch user.Role {
	case domain.RoleJobseeker:
		js.ContactPhone = contactPhone
		user.Jobseeker = &js
	case domain.RoleEmployer:
		emp.ContactPhone = contactPhone
		user.Employer = &emp
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	user.EnsureProfile()

	js := user.Jobseeker
	if js == nil {
		js = &domain.JobseekerProfile{}
	}
	emp := user.Employer
	if emp == nil {
		emp = &domain.EmployerProfile{}
	}
	contactPhone := js.ContactPhone
	if user.Role == domain.RoleEmployer {
		contactPhone = emp.ContactPhone
	}

	query := `UPDATE users SET first_name = $2, last_name = $3, verified = $4, updated_at = $5,
	              title = $6, bio = $7, skills = $8, experience = $9, education = $10, resume = $11, linkedin_profile = $12,
	              company_name = $13, industry = $14, company_size = $15, company_website = $16, company_description = $17,
	              contact_phone = $18, location = $19
	          WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Verified, user.UpdatedAt,
		js.Title, js.Bio, js.Skills, js.Experience, js.Education, js.Resume, js.LinkedinProfile,
		emp.CompanyName, emp.Industry, emp.CompanySize, emp.CompanyWebsite, emp.CompanyDescription,
		contactPhone, emp.Location,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FetchEmployerListings returns the public company feed derived from
// employer accounts that filled in a company name.
func (r *userRepo) FetchEmployerListings(ctx context.Context) ([]domain.EmployerListing, error) {
	query := `SELECT id, company_name, industry, company_size, company_website, company_description, location
	          FROM users
	          WHERE role = $1 AND company_name <> ''
	          ORDER BY company_name ASC`

	rows, err := r.db.Query(ctx, query, domain.RoleEmployer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.EmployerListing
	for rows.Next() {
		var l domain.EmployerListing
		if err := rows.Scan(
			&l.ID, &l.CompanyName, &l.Industry, &l.CompanySize,
			&l.CompanyWebsite, &l.CompanyDescription, &l.Location,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
