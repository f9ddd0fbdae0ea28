package adaptor

import (
	"net/http"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type AddressHandler struct {
	service usecase.AddressService
	log     *zap.Logger
}

func NewAddressHandler(service usecase.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{
		service: service,
		log:     log.With(zap.String("handler", "address")),
	}
}

// Create handles POST /address for the authenticated user
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	h.create(w, r, userID)
}

// CreateForUser handles POST /address/{userId} (admin)
func (h *AddressHandler) CreateForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	h.create(w, r, userID)
}

func (h *AddressHandler) create(w http.ResponseWriter, r *http.Request, userID uint) {
	var req request.CreateAddressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	address, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create address")
		return
	}

	utils.ResponseCreated(w, "Address created", address)
}

// GetMine handles GET /address
func (h *AddressHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	addresses, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get addresses")
		return
	}

	utils.ResponseSuccess(w, "success", addresses)
}
