package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
)

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *store {
	return &store{
		db: db,
	}
}

func (s *store) incrementOne(ctx context.Context, productID int64, quantity int64) error {
	query := `UPDATE product_stock SET quantity = quantity + $2 WHERE product_id = $1`

	res, err := s.db.ExecContext(
		ctx,
		query,
		productID,
		quantity,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to increment stock quantity in inventory store: %w",
			err,
		)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return servererrors.ErrStockNotFound
	}

	return nil
}

func (s *store) findByProductID(ctx context.Context, productID int64) (*Stock, error) {
	query := `SELECT product_id, quantity FROM product_stock WHERE product_id = $1`

	var stock Stock
	err := s.db.QueryRowContext(ctx, query, productID).Scan(
		&stock.ProductID,
		&stock.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrStockNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan stock quantity from inventory store: %w",
			err,
		)
	}

	return &stock, nil
}
