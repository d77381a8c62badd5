package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"coilmap/app"
	"coilmap/domain/core"
	"coilmap/domain/detect"
	"coilmap/domain/wiring"
	"coilmap/internal"
	"coilmap/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Stateless analysis API: no database, no session storage. Useful for
// embedding the analyzer behind another frontend or for quick local runs.
func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	logger := internal.NewDefaultLogger()
	analysis := app.NewAnalysisService(logger)
	guide := app.NewSolderingGuide()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/analyze", func(w http.ResponseWriter, req *http.Request) {
		var input models.PickupInput
		if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		result, err := analysis.AnalyzePickup(input)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Post("/api/detect", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Measurements detect.Measurements `json:"measurements"`
			OuterOhms    *float64            `json:"outer_ohms,omitempty"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		result, err := analysis.DetectLayout(body.Measurements, body.OuterOhms)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Get("/api/presets", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"presets": wiring.ColorPresets()})
	})

	r.Get("/api/presets/{name}", func(w http.ResponseWriter, req *http.Request) {
		preset, err := wiring.ColorPresetByName(chi.URLParam(req, "name"))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, preset)
	})

	r.Get("/api/guide/{mode}", func(w http.ResponseWriter, req *http.Request) {
		text, err := guide.ForMode(wiring.WiringMode(chi.URLParam(req, "mode")))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			logger.Warn("failed to write guide response: %v", err)
		}
	})

	logger.Info("stateless analysis API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func statusFor(err error) int {
	if core.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if core.IsNotFoundError(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
