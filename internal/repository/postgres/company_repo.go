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

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, description, logo, website, location, employer_id, created_at`

// Create inserts a company. The unique index on employer_id enforces one
// company per employer at the storage level, closing the check-then-insert
// race.
func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	company.CreatedAt = time.Now()

	query := `INSERT INTO companies (id, name, description, logo, website, location, employer_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Logo,
		company.Website, company.Location, company.EmployerID, company.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You already have a company profile")
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.getBy(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

func (r *companyRepo) GetByEmployerID(ctx context.Context, employerID string) (*domain.Company, error) {
	return r.getBy(ctx, `SELECT `+companyColumns+` FROM companies WHERE employer_id = $1`, employerID)
}

func (r *companyRepo) getBy(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var company domain.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&company.ID, &company.Name, &company.Description, &company.Logo,
		&company.Website, &company.Location, &company.EmployerID, &company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID, &company.Name, &company.Description, &company.Logo,
			&company.Website, &company.Location, &company.EmployerID, &company.CreatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $2, description = $3, logo = $4, website = $5, location = $6 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Logo, company.Website, company.Location,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
