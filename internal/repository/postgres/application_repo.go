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

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on
// (job_id, jobseeker_id) makes duplicate applications a storage-level
// conflict instead of a racy pre-check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	query := `INSERT INTO applications (id, job_id, jobseeker_id, resume, cover_letter, status, applied_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.JobseekerID, app.Resume, app.CoverLetter, app.Status, app.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied for this job")
		}
		return err
	}
	return nil
}

// GetByID retrieves an application with joined job and applicant data
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_id, a.resume, a.cover_letter, a.status, a.applied_at,
			j.title, j.company, j.location, j.salary,
			u.first_name || ' ' || u.last_name AS applicant_name,
			u.email AS applicant_email
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.jobseeker_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.JobseekerID, &app.Resume, &app.CoverLetter, &app.Status, &app.AppliedAt,
		&app.JobTitle, &app.JobCompany, &app.JobLocation, &app.JobSalary,
		&app.ApplicantName, &app.ApplicantEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with applicant data
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_id, a.resume, a.cover_letter, a.status, a.applied_at,
			u.first_name || ' ' || u.last_name AS applicant_name,
			u.email AS applicant_email
		FROM applications a
		JOIN users u ON a.jobseeker_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobseekerID, &app.Resume, &app.CoverLetter, &app.Status, &app.AppliedAt,
			&app.ApplicantName, &app.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByJobseekerID retrieves all applications submitted by a jobseeker
// with job summaries for the list view.
func (r *applicationRepo) GetByJobseekerID(ctx context.Context, jobseekerID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_id, a.resume, a.cover_letter, a.status, a.applied_at,
			j.title, j.company, j.location, j.salary
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.jobseeker_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobseekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobseekerID, &app.Resume, &app.CoverLetter, &app.Status, &app.AppliedAt,
			&app.JobTitle, &app.JobCompany, &app.JobLocation, &app.JobSalary,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByEmployerID retrieves applications across every job the employer owns.
func (r *applicationRepo) GetByEmployerID(ctx context.Context, employerID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_id, a.resume, a.cover_letter, a.status, a.applied_at,
			j.title, j.company, j.location,
			u.first_name || ' ' || u.last_name AS applicant_name,
			u.email AS applicant_email
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.jobseeker_id = u.id
		WHERE j.employer_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobseekerID, &app.Resume, &app.CoverLetter, &app.Status, &app.AppliedAt,
			&app.JobTitle, &app.JobCompany, &app.JobLocation,
			&app.ApplicantName, &app.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an application (jobseeker withdraw)
func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
