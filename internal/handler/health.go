package handler

import (
	"net/http"

	"github.com/sanctuaryofnature/api/internal/database"
)

// maxDiagnosticCollections caps how many collection names the diagnostics
// report lists.
const maxDiagnosticCollections = 10

// maxDiagnosticDetail caps the error text embedded in a database status string.
const maxDiagnosticDetail = 80

// LivenessMessage is the heartbeat line served at the root path.
const LivenessMessage = "The Sanctuary of Nature Backend is alive"

// TestReport is the diagnostics payload for GET /test. Every field is a
// plain string or list; the endpoint never returns an error status.
type TestReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HealthHandler reports liveness and document-store diagnostics
type HealthHandler struct {
	store   database.Store
	urlSet  bool
	nameSet bool
}

// HealthHandlerConfig holds configuration for the health handler
type HealthHandlerConfig struct {
	Store database.Store

	// URLSet and NameSet record whether DATABASE_URL and DATABASE_NAME were
	// present in the environment at startup.
	URLSet  bool
	NameSet bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg HealthHandlerConfig) *HealthHandler {
	return &HealthHandler{
		store:   cfg.Store,
		urlSet:  cfg.URLSet,
		nameSet: cfg.NameSet,
	}
}

// Liveness handles GET / with a plain heartbeat message
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": LivenessMessage})
}

// Diagnostics handles GET /test. It always answers 200: every probe failure
// is rendered as a status string inside the report, never as an error
// response, so the endpoint stays usable exactly when things are broken.
func (h *HealthHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	report := TestReport{
		Backend:          "running",
		Database:         "not configured",
		DatabaseURL:      presence(h.urlSet),
		DatabaseName:     presence(h.nameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.urlSet {
		report.Database = "not connected"
		if err := h.store.Ping(r.Context()); err == nil {
			report.ConnectionStatus = "connected"
			collections, err := h.store.ListCollections(r.Context(), maxDiagnosticCollections)
			if err != nil {
				report.Database = "connected but erroring: " + truncateDetail(err.Error(), maxDiagnosticDetail)
			} else {
				report.Database = "connected and working"
				report.Collections = collections
			}
		}
	}

	WriteJSON(w, http.StatusOK, report)
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
