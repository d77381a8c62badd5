package ports

import (
	"context"

	"coilmap/models"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for analysis session persistence
type SessionRepository interface {
	// CreateSession stores a new analysis session
	CreateSession(ctx context.Context, session *models.AnalysisSession) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, id uuid.UUID) (*models.AnalysisSession, error)

	// ListSessions returns sessions newest first, optionally limited
	ListSessions(ctx context.Context, limit int) ([]*models.AnalysisSession, error)

	// UpdateSession replaces a session's name, input and result payloads
	UpdateSession(ctx context.Context, session *models.AnalysisSession) error

	// DeleteSession removes a session by ID
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
