package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
)

const pgForeignKeyViolation = "23503"

// FeedbackRepo implements feedback persistence over PostgreSQL
type FeedbackRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(cfg *models.Config, db *sqlx.DB) *FeedbackRepo {
	return &FeedbackRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateFeedback inserts a new feedback row, assigning identity and
// timestamps. An unknown driver, passenger or travel reports a dangling
// reference.
func (r *FeedbackRepo) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = uuid.New()
	now := time.Now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	query := `
		INSERT INTO feedback (id, id_driver, id_passenger, id_travel,
			score, comment, created_at, updated_at
		) VALUES (:id, :id_driver, :id_passenger, :id_travel,
			:score, :comment, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, feedback); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrReferenceNotFound)
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	return nil
}

// GetFeedbackByID retrieves a feedback entry by id
func (r *FeedbackRepo) GetFeedbackByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	query := `
		SELECT id, id_driver, id_passenger, id_travel, score, comment,
			created_at, updated_at
		FROM feedback
		WHERE id = $1
	`

	var feedback models.Feedback
	err := r.db.GetContext(ctx, &feedback, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feedback %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return &feedback, nil
}

// ListFeedback returns all feedback in retrieval order (stable by creation time)
func (r *FeedbackRepo) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT id, id_driver, id_passenger, id_travel, score, comment,
			created_at, updated_at
		FROM feedback
		ORDER BY created_at
	`

	var result []models.Feedback
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return result, nil
}

// UpdateFeedback writes the merged feedback row back
func (r *FeedbackRepo) UpdateFeedback(ctx context.Context, feedback *models.Feedback) error {
	query := `
		UPDATE feedback SET
			score = :score, comment = :comment, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, feedback)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("feedback %s: %w", feedback.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteFeedback removes a feedback row; an absent id reports not found
func (r *FeedbackRepo) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("feedback %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// AverageDriverScore computes the mean score of a driver's rated feedback.
// A driver with no rated feedback keeps the registration default.
func (r *FeedbackRepo) AverageDriverScore(ctx context.Context, driverID uuid.UUID) (float64, error) {
	var average float64
	err := r.db.GetContext(ctx, &average,
		`SELECT COALESCE(AVG(score), $2) FROM feedback WHERE id_driver = $1 AND score IS NOT NULL`,
		driverID, models.DefaultUserScore)
	if err != nil {
		return 0, fmt.Errorf("failed to compute driver score: %w", err)
	}
	return average, nil
}

// UpdateDriverScore stores the driver's aggregate score on the user row
func (r *FeedbackRepo) UpdateDriverScore(ctx context.Context, driverID uuid.UUID, score float64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE users SET score = $1, updated_at = $2 WHERE id = $3`,
		score, time.Now(), driverID); err != nil {
		return fmt.Errorf("failed to update driver score: %w", err)
	}
	return nil
}
