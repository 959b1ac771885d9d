package handler

import (
	"net/http"

	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/service"
)

// HostHandler handles retreat host endpoints
type HostHandler struct {
	hostService *service.HostService
}

// NewHostHandler creates a new host handler
func NewHostHandler(hostService *service.HostService) *HostHandler {
	return &HostHandler{
		hostService: hostService,
	}
}

// CreateHost handles POST /api/hosts
func (h *HostHandler) CreateHost(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	host, err := h.hostService.CreateHost(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCreated(w, host.ID)
}

// ListHosts handles GET /api/hosts
func (h *HostHandler) ListHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := h.hostService.ListHosts(r.Context(), queryParams(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, hosts)
}
