package handler

import (
	"net/http"

	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/service"
)

// RetreatHandler handles retreat endpoints
type RetreatHandler struct {
	retreatService *service.RetreatService
}

// NewRetreatHandler creates a new retreat handler
func NewRetreatHandler(retreatService *service.RetreatService) *RetreatHandler {
	return &RetreatHandler{
		retreatService: retreatService,
	}
}

// CreateRetreat handles POST /api/retreats
func (h *RetreatHandler) CreateRetreat(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRetreatRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	retreat, err := h.retreatService.CreateRetreat(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCreated(w, retreat.ID)
}

// ListRetreats handles GET /api/retreats
func (h *RetreatHandler) ListRetreats(w http.ResponseWriter, r *http.Request) {
	retreats, err := h.retreatService.ListRetreats(r.Context(), queryParams(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, retreats)
}
