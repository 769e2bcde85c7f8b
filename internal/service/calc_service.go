package service

import (
	"context"
	"fmt"

	"github.com/sumplot/sumplot/internal/calculator"
	"github.com/sumplot/sumplot/internal/model"
)

// ICalcService is the contract of the calculation core. Handlers depend on
// this interface, not on the concrete implementation.
type ICalcService interface {
	Add(ctx context.Context, dto *model.CalculationRequest) (*model.CalculationResult, error)
}

type calcService struct{}

func NewCalcService() ICalcService {
	return &calcService{}
}

// Add computes number1 + number2. It is pure: no state is read or written,
// so repeated identical requests always produce identical results.
func (s *calcService) Add(ctx context.Context, dto *model.CalculationRequest) (*model.CalculationResult, error) {
	if dto.Number1 == nil || dto.Number2 == nil {
		return nil, fmt.Errorf("%w: both number1 and number2 are required", ErrInvalidInput)
	}

	return &model.CalculationResult{
		Result: calculator.Add(*dto.Number1, *dto.Number2),
	}, nil
}
