package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/Jeremias-V/Mini-POS/internal/storage"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// createOne inserts the product together with its stock tracking row,
// initialized to zero, as one transaction.
func (s *Store) createOne(ctx context.Context, newProduct *Product) (int64, error) {
	tx, err := s.db.BeginTx(
		ctx,
		nil,
	)
	if err != nil {
		return 0, err
	}

	productQuery := `INSERT INTO products(name, price, weight, unit) VALUES($1, $2, $3, $4) RETURNING product_id`

	var productID int64

	err = tx.QueryRowContext(
		ctx,
		productQuery,
		newProduct.Name,
		newProduct.Price,
		newProduct.Weight,
		newProduct.Unit,
	).Scan(&productID)
	if err != nil {
		tx.Rollback()

		if storage.IsUniqueViolation(err) {
			return 0, servererrors.ErrProductAlreadyExists
		}

		return 0, fmt.Errorf(
			"failed to insert new product in product store: %w",
			err,
		)
	}

	stockQuery := `INSERT INTO product_stock(product_id, quantity) VALUES($1, 0)`
	_, err = tx.ExecContext(
		ctx,
		stockQuery,
		productID,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf(
			"failed to insert stock tracking row in product store: %w",
			err,
		)
	}

	return productID, tx.Commit()
}

func (s *Store) findAll(ctx context.Context) ([]*ProductAndStockDTO, error) {
	query := `SELECT p.product_id, p.name, p.price, p.weight, p.unit, COALESCE(ps.quantity, 0)
		FROM products p
		LEFT JOIN product_stock ps ON ps.product_id = p.product_id
		ORDER BY p.product_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all products from product store: %w",
			err,
		)
	}
	defer rows.Close()

	products := []*ProductAndStockDTO{}
	for rows.Next() {
		var dto ProductAndStockDTO
		err := rows.Scan(
			&dto.ProductID,
			&dto.Name,
			&dto.Price,
			&dto.Weight,
			&dto.Unit,
			&dto.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan product from product store: %w",
				err,
			)
		}
		products = append(products, &dto)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *Store) findByName(ctx context.Context, name string) (*Product, error) {
	query := `SELECT product_id, name, price, weight, unit FROM products WHERE name = $1`

	var p Product
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&p.ProductID,
		&p.Name,
		&p.Price,
		&p.Weight,
		&p.Unit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrProductNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan product from product store: %w",
			err,
		)
	}

	return &p, nil
}

// deleteOne removes the product plus any open-cart entries still pointing at
// it, in one transaction. The stock tracking row goes with the product via
// its foreign key.
func (s *Store) deleteOne(ctx context.Context, productID int64) error {
	tx, err := s.db.BeginTx(
		ctx,
		nil,
	)
	if err != nil {
		return err
	}

	entriesQuery := `DELETE FROM current_invoice_products WHERE product_id = $1`
	if _, err := tx.ExecContext(ctx, entriesQuery, productID); err != nil {
		tx.Rollback()
		return fmt.Errorf(
			"failed to delete cart entries for product in product store: %w",
			err,
		)
	}

	productQuery := `DELETE FROM products WHERE product_id = $1`
	res, err := tx.ExecContext(ctx, productQuery, productID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf(
			"failed to delete product in product store: %w",
			err,
		)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}

	if affected == 0 {
		tx.Rollback()
		return servererrors.ErrProductNotFound
	}

	return tx.Commit()
}
