package repository

import (
	"context"
	"database/sql"

	"github.com/sumplot/sumplot/internal/model"
)

type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type ICalculationRepository interface {
	Create(ctx context.Context, calculation *model.Calculation) error
	GetByUserID(ctx context.Context, userID int) ([]*model.Calculation, error)
}

type IRepository interface {
	User() IUserRepository
	Calculation() ICalculationRepository
}

type Repository struct {
	user        IUserRepository
	calculation ICalculationRepository
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		user:        NewUserRepository(db),
		calculation: NewCalculationRepository(db),
	}
}

func (r *Repository) User() IUserRepository {
	return r.user
}

func (r *Repository) Calculation() ICalculationRepository {
	return r.calculation
}
