package handler

import (
	"net/http"

	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/service"
)

// RecommendHandler handles recommendation and quiz endpoints
type RecommendHandler struct {
	recommendService *service.RecommendationService
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommendService *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
	}
}

// Recommend handles POST /api/recommend
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)
}

// Quiz handles POST /api/quiz. The quiz flow submits the same preference
// shape (goals included) and shares the recommendation routine.
func (h *RecommendHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)
}

func (h *RecommendHandler) respond(w http.ResponseWriter, r *http.Request) {
	var pref model.Preference
	if err := DecodeJSON(r, &pref); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	rec, err := h.recommendService.Recommend(r.Context(), &pref)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, rec)
}
