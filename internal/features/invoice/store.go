package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

// confirmOne converts the user's open cart into a permanent invoice as one
// transaction: snapshot every entry's product attributes, fold them into
// quantity-aggregated lines, persist the lines, and drop the cart. A cart
// with zero entries still yields an invoice, with zero lines.
func (s *Store) confirmOne(ctx context.Context, userID int64, confirmedAt time.Time) (*Invoice, []*InvoiceLine, error) {
	tx, err := s.db.BeginTx(
		ctx,
		nil,
	)
	if err != nil {
		return nil, nil, err
	}

	cartQuery := `SELECT current_invoice_id FROM current_invoices WHERE user_id = $1`

	var cartID int64
	err = tx.QueryRowContext(ctx, cartQuery, userID).Scan(&cartID)
	if err != nil {
		tx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, servererrors.ErrNoOpenCart
		}

		return nil, nil, fmt.Errorf(
			"failed to look up open cart in invoice store: %w",
			err,
		)
	}

	entriesQuery := `SELECT p.name, p.price, p.weight, p.unit
		FROM current_invoice_products cip
		JOIN products p ON p.product_id = cip.product_id
		WHERE cip.current_invoice_id = $1
		ORDER BY cip.entry_id`

	rows, err := tx.QueryContext(ctx, entriesQuery, cartID)
	if err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf(
			"failed to get cart entries in invoice store: %w",
			err,
		)
	}

	accumulator := NewLineAccumulator()
	for rows.Next() {
		var (
			name   string
			price  int64
			weight float64
			unit   string
		)
		if err := rows.Scan(&name, &price, &weight, &unit); err != nil {
			rows.Close()
			tx.Rollback()
			return nil, nil, fmt.Errorf(
				"failed to scan cart entry in invoice store: %w",
				err,
			)
		}

		accumulator.Add(name, price, weight, unit)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return nil, nil, err
	}
	rows.Close()

	invoiceQuery := `INSERT INTO invoices(user_id, confirmed_at) VALUES($1, $2) RETURNING invoice_id`

	newInvoice := Invoice{
		UserID:      userID,
		ConfirmedAt: confirmedAt,
	}
	err = tx.QueryRowContext(
		ctx,
		invoiceQuery,
		userID,
		confirmedAt,
	).Scan(&newInvoice.InvoiceID)
	if err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf(
			"failed to insert invoice in invoice store: %w",
			err,
		)
	}

	lineQuery := `INSERT INTO invoice_products(invoice_id, name, price, weight, unit, quantity) VALUES($1, $2, $3, $4, $5, $6)`

	lines := accumulator.Lines()
	for _, line := range lines {
		_, err = tx.ExecContext(
			ctx,
			lineQuery,
			newInvoice.InvoiceID,
			line.Name,
			line.Price,
			line.Weight,
			line.Unit,
			line.Quantity,
		)
		if err != nil {
			tx.Rollback()
			return nil, nil, fmt.Errorf(
				"failed to insert invoice line in invoice store: %w",
				err,
			)
		}
	}

	// dropping the cart row cascades to its entries.
	deleteCartQuery := `DELETE FROM current_invoices WHERE current_invoice_id = $1`
	if _, err := tx.ExecContext(ctx, deleteCartQuery, cartID); err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf(
			"failed to delete open cart in invoice store: %w",
			err,
		)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return &newInvoice, lines, nil
}

// findLinesInRange returns every invoice line of every invoice confirmed
// within [from, toExclusive), in invoice then line order. No invoices at all
// in the range is ErrNoInvoicesInRange; invoices with zero lines are fine.
func (s *Store) findLinesInRange(ctx context.Context, from, toExclusive time.Time) ([]*InvoiceLine, error) {
	countQuery := `SELECT COUNT(*) FROM invoices WHERE confirmed_at >= $1 AND confirmed_at < $2`

	var count int64
	err := s.db.QueryRowContext(
		ctx,
		countQuery,
		from,
		toExclusive,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to count invoices in invoice store: %w",
			err,
		)
	}

	if count == 0 {
		return nil, servererrors.ErrNoInvoicesInRange
	}

	linesQuery := `SELECT ip.name, ip.price, ip.weight, ip.unit, ip.quantity
		FROM invoice_products ip
		JOIN invoices i ON i.invoice_id = ip.invoice_id
		WHERE i.confirmed_at >= $1 AND i.confirmed_at < $2
		ORDER BY ip.invoice_id, ip.line_id`

	rows, err := s.db.QueryContext(
		ctx,
		linesQuery,
		from,
		toExclusive,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get invoice lines from invoice store: %w",
			err,
		)
	}
	defer rows.Close()

	lines := []*InvoiceLine{}
	for rows.Next() {
		var line InvoiceLine
		err := rows.Scan(
			&line.Name,
			&line.Price,
			&line.Weight,
			&line.Unit,
			&line.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan invoice line from invoice store: %w",
				err,
			)
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
