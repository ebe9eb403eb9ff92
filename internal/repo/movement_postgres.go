package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Githubspruchir/InventoryStore/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement.
func (r *PostgresMovementRepository) Log(productID, delta int) error {
	query := `INSERT INTO movements (product_id, delta, created_at) VALUES ($1, $2, $3)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, productID, delta, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// GetByProductID returns all movements for a specific product, newest first.
func (r *PostgresMovementRepository) GetByProductID(productID int) ([]models.Movement, error) {
	query := `SELECT id, product_id, delta, created_at FROM movements WHERE product_id = $1 ORDER BY id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
