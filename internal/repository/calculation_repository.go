package repository

import (
	"context"
	"database/sql"

	"github.com/sumplot/sumplot/internal/model"
)

// calculationRepository is the implementation of ICalculationRepository.
type calculationRepository struct {
	db *sql.DB
}

// NewCalculationRepository is the constructor for calculationRepository.
func NewCalculationRepository(db *sql.DB) ICalculationRepository {
	return &calculationRepository{db: db}
}

// Create inserts a new calculation record into the database.
func (r *calculationRepository) Create(ctx context.Context, calculation *model.Calculation) error {
	query := `
		INSERT INTO calculations (id, user_id, number1, number2, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		calculation.ID,
		calculation.UserID,
		calculation.Number1,
		calculation.Number2,
		calculation.Result,
		calculation.CreatedAt,
	)

	return err
}

// GetByUserID retrieves all saved calculations for a specific user.
func (r *calculationRepository) GetByUserID(ctx context.Context, userID int) ([]*model.Calculation, error) {
	query := `
		SELECT id, user_id, number1, number2, result, created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calculations []*model.Calculation
	for rows.Next() {
		var c model.Calculation
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Number1,
			&c.Number2,
			&c.Result,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		calculations = append(calculations, &c)
	}

	return calculations, rows.Err()
}
