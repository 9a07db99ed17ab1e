package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/service"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// insertErr reports primary key clashes as service.ErrDuplicateID.
func insertErr(id string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", id, service.ErrDuplicateID)
	}
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	total_price      NUMERIC(10, 2) NOT NULL,
	delivery_method  TEXT NOT NULL,
	customer_name    TEXT NOT NULL,
	customer_phone   TEXT NOT NULL,
	customer_address TEXT,
	notes            TEXT,
	estimated_time   INTEGER NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	menu_item_id TEXT NOT NULL,
	name         TEXT NOT NULL,
	price        NUMERIC(10, 2) NOT NULL,
	quantity     INTEGER NOT NULL,
	notes        TEXT,
	PRIMARY KEY (order_id, position)
);

CREATE TABLE IF NOT EXISTS reservations (
	id               TEXT PRIMARY KEY,
	reservation_date DATE NOT NULL,
	reservation_time TEXT NOT NULL,
	party_size       INTEGER NOT NULL,
	customer_name    TEXT NOT NULL,
	customer_phone   TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL
);`

// PostgresRepository is the submission log.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordOrder(ctx context.Context, order domain.OrderDetails) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, total_price, delivery_method, customer_name, customer_phone, customer_address, notes, estimated_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, order.OrderID, order.TotalPrice, string(order.DeliveryMethod), order.Customer.Name, order.Customer.Phone,
		order.Customer.Address, order.Notes, order.EstimatedTime, order.Timestamp); err != nil {
		return insertErr(order.OrderID, err)
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, menu_item_id, name, price, quantity, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, order.OrderID, i, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Notes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.OrderDetails, error) {
	var (
		order  domain.OrderDetails
		method string
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, total_price, delivery_method, customer_name, customer_phone,
		       COALESCE(customer_address, ''), COALESCE(notes, ''), estimated_time, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.OrderID, &order.TotalPrice, &method, &order.Customer.Name, &order.Customer.Phone,
		&order.Customer.Address, &order.Notes, &order.EstimatedTime, &order.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	order.DeliveryMethod = domain.DeliveryMethod(method)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_item_id, name, price, quantity, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderLine{}
	for rows.Next() {
		var item domain.OrderLine
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity, &item.Notes); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) RecordReservation(ctx context.Context, res domain.ReservationDetails) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reservations (id, reservation_date, reservation_time, party_size, customer_name, customer_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, res.ReservationID, res.Date, res.Time, res.PartySize, res.Customer.Name, res.Customer.Phone, res.Timestamp)
	return insertErr(res.ReservationID, err)
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	var (
		res  domain.ReservationDetails
		date time.Time
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, reservation_date, reservation_time, party_size, customer_name, customer_phone, created_at
		FROM reservations WHERE id = $1
	`, id).Scan(&res.ReservationID, &date, &res.Time, &res.PartySize, &res.Customer.Name, &res.Customer.Phone, &res.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	res.Date = date.Format("2006-01-02")
	return &res, nil
}
