package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, location, description, requirements, salary, employer_id, created_at, expires_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()

	query := `INSERT INTO jobs (id, title, company, location, description, requirements, salary, employer_id, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Description,
		job.Requirements, job.Salary, job.EmployerID, job.CreatedAt, job.ExpiresAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&job.Requirements, &job.Salary, &job.EmployerID, &job.CreatedAt, &job.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchActive hides postings whose expiry has passed. The filter is
// server-side so clients cannot list stale jobs.
func (r *jobRepo) FetchActive(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE expires_at IS NULL OR expires_at > NOW()
	          ORDER BY created_at DESC`
	return r.fetch(ctx, query)
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, employerID)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
			&job.Requirements, &job.Salary, &job.EmployerID, &job.CreatedAt, &job.ExpiresAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
