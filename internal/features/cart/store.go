package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// addEntry appends one scan of productID to the user's open cart as a single
// transaction: verify the product, take one unit of stock, look up or create
// the cart, insert the entry. The upsert on current_invoices(user_id) is what
// makes lookup-or-create atomic under concurrent scans.
func (s *Store) addEntry(ctx context.Context, userID int64, productID int64) (*scanResult, error) {
	tx, err := s.db.BeginTx(
		ctx,
		nil,
	)
	if err != nil {
		return nil, err
	}

	productQuery := `SELECT name FROM products WHERE product_id = $1`

	var productName string
	err = tx.QueryRowContext(ctx, productQuery, productID).Scan(&productName)
	if err != nil {
		tx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrProductNotFound
		}

		return nil, fmt.Errorf(
			"failed to look up product in cart store: %w",
			err,
		)
	}

	decrementQuery := `UPDATE product_stock SET quantity = quantity - 1 WHERE product_id = $1 AND quantity > 0 RETURNING quantity`

	var remaining int64
	err = tx.QueryRowContext(ctx, decrementQuery, productID).Scan(&remaining)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			tx.Rollback()
			return nil, fmt.Errorf(
				"failed to decrement stock in cart store: %w",
				err,
			)
		}

		// either there is no stock tracking row at all, or it is at zero.
		stockQuery := `SELECT quantity FROM product_stock WHERE product_id = $1`

		var quantity int64
		stockErr := tx.QueryRowContext(ctx, stockQuery, productID).Scan(&quantity)
		tx.Rollback()

		if errors.Is(stockErr, sql.ErrNoRows) {
			return nil, servererrors.ErrStockNotFound
		}
		if stockErr != nil {
			return nil, fmt.Errorf(
				"failed to look up stock in cart store: %w",
				stockErr,
			)
		}

		return nil, servererrors.ErrOutOfStock
	}

	cartQuery := `INSERT INTO current_invoices(user_id) VALUES($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING current_invoice_id`

	var cartID int64
	err = tx.QueryRowContext(ctx, cartQuery, userID).Scan(&cartID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf(
			"failed to look up or create open cart in cart store: %w",
			err,
		)
	}

	entryQuery := `INSERT INTO current_invoice_products(current_invoice_id, product_id) VALUES($1, $2)`
	_, err = tx.ExecContext(
		ctx,
		entryQuery,
		cartID,
		productID,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf(
			"failed to insert cart entry in cart store: %w",
			err,
		)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &scanResult{
		ProductID:   productID,
		ProductName: productName,
		Remaining:   remaining,
	}, nil
}

// findEntries returns every entry of the user's open cart in scan order.
func (s *Store) findEntries(ctx context.Context, userID int64) ([]*CartProductDTO, error) {
	cartQuery := `SELECT current_invoice_id FROM current_invoices WHERE user_id = $1`

	var cartID int64
	err := s.db.QueryRowContext(ctx, cartQuery, userID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrNoOpenCart
		}

		return nil, fmt.Errorf(
			"failed to look up open cart in cart store: %w",
			err,
		)
	}

	entriesQuery := `SELECT p.name, p.price, p.weight, p.unit
		FROM current_invoice_products cip
		JOIN products p ON p.product_id = cip.product_id
		WHERE cip.current_invoice_id = $1
		ORDER BY cip.entry_id`

	rows, err := s.db.QueryContext(ctx, entriesQuery, cartID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get cart entries from cart store: %w",
			err,
		)
	}
	defer rows.Close()

	entries := []*CartProductDTO{}
	for rows.Next() {
		var entry CartProductDTO
		err := rows.Scan(
			&entry.Name,
			&entry.Price,
			&entry.Weight,
			&entry.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan cart entry from cart store: %w",
				err,
			)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
