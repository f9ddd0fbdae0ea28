package adaptor

import (
	"net/http"

	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type PaymentStatusHandler struct {
	service usecase.PaymentStatusService
	log     *zap.Logger
}

func NewPaymentStatusHandler(service usecase.PaymentStatusService, log *zap.Logger) *PaymentStatusHandler {
	return &PaymentStatusHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment_status")),
	}
}

func (h *PaymentStatusHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get payment statuses")
		return
	}

	utils.ResponseSuccess(w, "success", statuses)
}

func (h *PaymentStatusHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	status, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get payment status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}
