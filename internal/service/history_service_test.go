package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumplot/sumplot/internal/model"
)

// fakeCalculationRepo is an in-memory ICalculationRepository for tests.
type fakeCalculationRepo struct {
	saved []*model.Calculation
}

func (r *fakeCalculationRepo) Create(ctx context.Context, calculation *model.Calculation) error {
	r.saved = append(r.saved, calculation)
	return nil
}

func (r *fakeCalculationRepo) GetByUserID(ctx context.Context, userID int) ([]*model.Calculation, error) {
	var out []*model.Calculation
	for _, c := range r.saved {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestHistoryServiceRecord(t *testing.T) {
	repo := &fakeCalculationRepo{}
	s := NewHistoryService(NewCalcService(), repo)

	calculation, err := s.Record(context.Background(), 7, &model.CalculationRequest{
		Number1: floatPtr(2.5),
		Number2: floatPtr(3.5),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, calculation.ID)
	assert.Equal(t, 7, calculation.UserID)
	assert.Equal(t, 6.0, calculation.Result)
	assert.False(t, calculation.CreatedAt.IsZero())
	require.Len(t, repo.saved, 1)
	assert.Equal(t, calculation, repo.saved[0])
}

func TestHistoryServiceRecordInvalidInput(t *testing.T) {
	repo := &fakeCalculationRepo{}
	s := NewHistoryService(NewCalcService(), repo)

	_, err := s.Record(context.Background(), 7, &model.CalculationRequest{
		Number1: floatPtr(2.5),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.saved)
}

func TestHistoryServiceListByUser(t *testing.T) {
	repo := &fakeCalculationRepo{}
	s := NewHistoryService(NewCalcService(), repo)

	_, err := s.Record(context.Background(), 1, &model.CalculationRequest{
		Number1: floatPtr(1),
		Number2: floatPtr(2),
	})
	require.NoError(t, err)
	_, err = s.Record(context.Background(), 2, &model.CalculationRequest{
		Number1: floatPtr(3),
		Number2: floatPtr(4),
	})
	require.NoError(t, err)

	mine, err := s.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 3.0, mine[0].Result)
}
