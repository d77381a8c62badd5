package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coilmap/domain/core"
	"coilmap/models"
	"coilmap/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession stores a new analysis session
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.AnalysisSession) error {
	// JSONBDocument implements driver.Valuer, so it will be automatically converted
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analysis_sessions (id, name, input, result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, session.ID, session.Name, session.Input, session.Result, session.CreatedAt, session.UpdatedAt)
	return err
}

// GetSession retrieves a session by ID
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, id uuid.UUID) (*models.AnalysisSession, error) {
	var session models.AnalysisSession
	err := r.db.GetContext(ctx, &session, `
		SELECT id, name, input, result, created_at, updated_at
		FROM analysis_sessions
		WHERE id = $1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// ListSessions returns sessions newest first, optionally limited
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context, limit int) ([]*models.AnalysisSession, error) {
	query := `
		SELECT id, name, input, result, created_at, updated_at
		FROM analysis_sessions
		ORDER BY created_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AnalysisSession
	for rows.Next() {
		var session models.AnalysisSession
		err := rows.Scan(
			&session.ID,
			&session.Name,
			&session.Input,
			&session.Result,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// UpdateSession replaces a session's name, input and result payloads
func (r *SessionRepositoryImpl) UpdateSession(ctx context.Context, session *models.AnalysisSession) error {
	session.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, `
		UPDATE analysis_sessions
		SET name = $2, input = $3, result = $4, updated_at = $5
		WHERE id = $1
	`, session.ID, session.Name, session.Input, session.Result, session.UpdatedAt)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes a session by ID
func (r *SessionRepositoryImpl) DeleteSession(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM analysis_sessions
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrSessionNotFound
	}

	return nil
}
