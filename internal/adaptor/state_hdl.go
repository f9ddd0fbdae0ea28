package adaptor

import (
	"net/http"

	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type StateHandler struct {
	service usecase.StateService
	log     *zap.Logger
}

func NewStateHandler(service usecase.StateService, log *zap.Logger) *StateHandler {
	return &StateHandler{
		service: service,
		log:     log.With(zap.String("handler", "state")),
	}
}

// GetAll handles GET /state
func (h *StateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get states")
		return
	}

	utils.ResponseSuccess(w, "success", states)
}

// GetCities handles GET /city/{stateId}
func (h *StateHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	stateID, ok := pathID(w, r, "stateId")
	if !ok {
		return
	}

	cities, err := h.service.GetCitiesByState(r.Context(), stateID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cities")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}
