package usecase

import (
	"context"

	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/response"

	"go.uber.org/zap"
)

type PaymentStatusService interface {
	GetAll(ctx context.Context) ([]response.PaymentStatusResponse, error)
	GetByID(ctx context.Context, id uint) (*response.PaymentStatusResponse, error)
}

type paymentStatusService struct {
	repo repository.PaymentStatusRepository
	log  *zap.Logger
}

func NewPaymentStatusService(repo repository.PaymentStatusRepository, log *zap.Logger) PaymentStatusService {
	return &paymentStatusService{
		repo: repo,
		log:  log.With(zap.String("service", "payment_status")),
	}
}

func (s *paymentStatusService) GetAll(ctx context.Context) ([]response.PaymentStatusResponse, error) {
	statuses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal("failed to get payment statuses")
	}

	resp := make([]response.PaymentStatusResponse, len(statuses))
	for i, status := range statuses {
		resp[i] = response.PaymentStatusToResponse(status)
	}
	return resp, nil
}

func (s *paymentStatusService) GetByID(ctx context.Context, id uint) (*response.PaymentStatusResponse, error) {
	status, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internal("failed to get payment status")
	}
	if status == nil {
		return nil, notFound("payment status not found")
	}

	resp := response.PaymentStatusToResponse(status)
	return &resp, nil
}
