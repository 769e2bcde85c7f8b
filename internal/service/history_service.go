package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sumplot/sumplot/internal/model"
	"github.com/sumplot/sumplot/internal/repository"
)

// IHistoryService performs an addition on behalf of a signed-in user and
// keeps the result.
type IHistoryService interface {
	Record(ctx context.Context, userID int, dto *model.CalculationRequest) (*model.Calculation, error)
	ListByUser(ctx context.Context, userID int) ([]*model.Calculation, error)
}

type historyService struct {
	calcService     ICalcService
	calculationRepo repository.ICalculationRepository
}

func NewHistoryService(calcService ICalcService, calculationRepo repository.ICalculationRepository) IHistoryService {
	return &historyService{
		calcService:     calcService,
		calculationRepo: calculationRepo,
	}
}

func (s *historyService) Record(ctx context.Context, userID int, dto *model.CalculationRequest) (*model.Calculation, error) {
	result, err := s.calcService.Add(ctx, dto)
	if err != nil {
		return nil, err
	}

	calculation := &model.Calculation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Number1:   *dto.Number1,
		Number2:   *dto.Number2,
		Result:    result.Result,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.calculationRepo.Create(ctx, calculation); err != nil {
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}

	return calculation, nil
}

func (s *historyService) ListByUser(ctx context.Context, userID int) ([]*model.Calculation, error) {
	return s.calculationRepo.GetByUserID(ctx, userID)
}
