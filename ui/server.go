package ui

import (
	"net/http"

	"coilmap/app"
	"coilmap/domain/core"
	"coilmap/domain/detect"
	"coilmap/domain/wiring"
	"coilmap/internal"
	apperrors "coilmap/internal/errors"
	"coilmap/models"
	"coilmap/ports"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"
)

// Server is the JSON API for the coil mapping workbench
type Server struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	export   *app.ExportService
	guide    *app.SolderingGuide
	sessions ports.SessionRepository
	logger   *internal.Logger
}

// NewServer creates a new API server instance
func NewServer(analysis *app.AnalysisService, export *app.ExportService, guide *app.SolderingGuide, sessions ports.SessionRepository, logger *internal.Logger) *Server {
	s := &Server{
		router:   gin.Default(),
		analysis: analysis,
		export:   export,
		guide:    guide,
		sessions: sessions,
		logger:   logger.WithComponent("ui"),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/api/analyze", s.handleAnalyze)
	s.router.POST("/api/detect", s.handleDetect)
	s.router.GET("/api/presets", s.handlePresets)
	s.router.GET("/api/presets/:name", s.handlePresetByName)
	s.router.GET("/api/guide/:mode", s.handleGuide)

	s.router.POST("/api/sessions", s.handleCreateSession)
	s.router.GET("/api/sessions", s.handleListSessions)
	s.router.GET("/api/sessions/:id", s.handleGetSession)
	s.router.PUT("/api/sessions/:id", s.handleUpdateSession)
	s.router.DELETE("/api/sessions/:id", s.handleDeleteSession)
	s.router.GET("/api/sessions/:id/export", s.handleExportSession)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting coilmap API on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var input models.PickupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, apperrors.InvalidInput("malformed pickup input", err))
		return
	}

	analysis, err := s.analysis.AnalyzePickup(input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleDetect(c *gin.Context) {
	var req struct {
		Measurements detect.Measurements `json:"measurements"`
		OuterOhms    *float64            `json:"outer_ohms,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.InvalidInput("malformed measurement matrix", err))
		return
	}

	result, err := s.analysis.DetectLayout(req.Measurements, req.OuterOhms)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": wiring.ColorPresets()})
}

func (s *Server) handlePresetByName(c *gin.Context) {
	preset, err := wiring.ColorPresetByName(c.Param("name"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (s *Server) handleGuide(c *gin.Context) {
	mode := wiring.WiringMode(c.Param("mode"))
	text, err := s.guide.ForMode(mode)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if c.Query("format") == "html" {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		c.Data(http.StatusOK, "text/html; charset=utf-8", markdown.ToHTML([]byte(text), p, renderer))
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(text))
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req struct {
		Name  string             `json:"name"`
		Input models.PickupInput `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.InvalidInput("malformed session request", err))
		return
	}

	analysis, err := s.analysis.AnalyzePickup(req.Input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	session, err := models.NewAnalysisSession(req.Name, req.Input, analysis)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.sessions.CreateSession(c.Request.Context(), session); err != nil {
		s.respondError(c, apperrors.DatabaseError("failed to save session", err))
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleListSessions(c *gin.Context) {
	sessions, err := s.sessions.ListSessions(c.Request.Context(), 100)
	if err != nil {
		s.respondError(c, apperrors.DatabaseError("failed to list sessions", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) handleGetSession(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}

	session, err := s.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// handleUpdateSession re-runs the analysis on the new input and replaces
// the stored snapshot
func (s *Server) handleUpdateSession(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Name  string             `json:"name"`
		Input models.PickupInput `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.InvalidInput("malformed session request", err))
		return
	}

	session, err := s.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	analysis, err := s.analysis.AnalyzePickup(req.Input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := models.NewAnalysisSession(req.Name, req.Input, analysis)
	if err != nil {
		s.respondError(c, err)
		return
	}
	updated.ID = session.ID
	updated.CreatedAt = session.CreatedAt

	if err := s.sessions.UpdateSession(c.Request.Context(), updated); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}

	if err := s.sessions.DeleteSession(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleExportSession(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}

	path, err := s.export.ExportSession(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.FileAttachment(path, "coilmap-analysis.xlsx")
}

func (s *Server) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondError(c, apperrors.InvalidInput("session id must be a UUID", err))
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	case core.IsValidationError(err):
		status = http.StatusBadRequest
	case apperrors.GetCode(err) == apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
