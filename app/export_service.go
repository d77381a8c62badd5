package app

import (
	"context"
	"encoding/json"

	"coilmap/internal"
	apperrors "coilmap/internal/errors"
	"coilmap/models"
	"coilmap/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// exportConcurrency bounds how many workbooks are written at once
const exportConcurrency = 4

// PlanExporter writes one pickup analysis to a workbook file
type PlanExporter interface {
	WriteAnalysis(name string, analysis *models.PickupAnalysis) (string, error)
}

// ExportService renders saved sessions into downloadable Excel workbooks
type ExportService struct {
	sessions ports.SessionRepository
	writer   PlanExporter
	logger   *internal.Logger
}

// NewExportService creates an export service
func NewExportService(sessions ports.SessionRepository, writer PlanExporter, logger *internal.Logger) *ExportService {
	return &ExportService{
		sessions: sessions,
		writer:   writer,
		logger:   logger.WithComponent("export"),
	}
}

// ExportSession writes a single saved session to a workbook and returns the
// file path
func (s *ExportService) ExportSession(ctx context.Context, id uuid.UUID) (string, error) {
	session, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return "", err
	}
	return s.exportOne(session)
}

// ExportAll writes every saved session to its own workbook. Sessions export
// concurrently; the first failure cancels the rest.
func (s *ExportService) ExportAll(ctx context.Context) ([]string, error) {
	sessions, err := s.sessions.ListSessions(ctx, 0)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(sessions))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for i, session := range sessions {
		g.Go(func() error {
			path, err := s.exportOne(session)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("exported %d session(s)", len(paths))
	return paths, nil
}

func (s *ExportService) exportOne(session *models.AnalysisSession) (string, error) {
	var analysis models.PickupAnalysis
	if err := json.Unmarshal(session.Result, &analysis); err != nil {
		return "", apperrors.ExportFailed("session result is not a pickup analysis", err)
	}

	name := session.Name
	if name == "" {
		name = session.ID.String()
	}
	path, err := s.writer.WriteAnalysis(name, &analysis)
	if err != nil {
		return "", apperrors.ExportFailed("failed to write workbook", err)
	}

	s.logger.Debug("exported session %s to %s", session.ID, path)
	return path, nil
}
