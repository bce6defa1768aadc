package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/lat08/web-eyewear-sub001/internal/domain/errors"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// satisfies it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier covers the query surface shared by the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            slug TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_payment ON orders(payment_status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, slug, name, description, image, price, stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Image, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Image, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return scanProduct(r.storage.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return scanProduct(r.storage.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug=$1`, slug))
}

// --- OrderRepository implementation ---

const orderColumns = `o.id, o.user_id, u.name, u.email, o.status, o.payment_status, o.total, o.created_at, o.updated_at`

func (r *orderRepository) Create(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error) {
	orderID := uuid.NewString()

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		type priced struct {
			price float64
			qty   int
		}
		resolved := make(map[int64]priced, len(items))
		var total float64

		for _, item := range items {
			var price float64
			var stock int
			err := tx.QueryRow(ctx, `SELECT price, stock FROM products WHERE id=$1 FOR UPDATE`, item.ProductID).Scan(&price, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrProductMissing
				}
				return err
			}
			if stock < item.Quantity {
				return domainErrors.ErrInsufficientStock
			}
			if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id=$1`, item.ProductID, item.Quantity); err != nil {
				return mapStockError(err)
			}
			resolved[item.ProductID] = priced{price: price, qty: item.Quantity}
			total += price * float64(item.Quantity)
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO orders (id, user_id, status, payment_status, total) VALUES ($1, $2, $3, $4, $5)`,
			orderID, userID, model.OrderStatusPending, model.PaymentStatusPending, total,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domainErrors.ErrNotFound
			}
			return err
		}

		for _, item := range items {
			p := resolved[item.ProductID]
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`,
				orderID, item.ProductID, p.qty, p.price,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, orderID)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return getOrder(ctx, r.storage.pool, id)
}

func getOrder(ctx context.Context, q querier, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.user_id WHERE o.id=$1`
	var o model.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.UserName, &o.UserEmail,
		&o.Status, &o.PaymentStatus, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := loadItems(ctx, q, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func loadItems(ctx context.Context, q querier, orderID string) ([]model.OrderItem, error) {
	rows, err := q.Query(ctx, `SELECT product_id, quantity, unit_price FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN users u ON u.id = o.user_id
                   WHERE o.user_id=$1 ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.UserEmail, &o.Status, &o.PaymentStatus, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := loadItems(ctx, r.storage.pool, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

// UpdateStatus applies the status transition and its stock side effects as one
// transaction. Entering CANCELLED restores stock for every item; leaving
// CANCELLED re-reserves it. Any missing product or shortfall aborts the whole
// transition, leaving the order and all stock untouched.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, update repository.StatusUpdate) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.OrderStatus
		err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if update.Status != nil {
			switch {
			case *update.Status == model.OrderStatusCancelled && current != model.OrderStatusCancelled:
				if err := restockItems(ctx, tx, orderID); err != nil {
					return err
				}
			case current == model.OrderStatusCancelled && *update.Status != model.OrderStatusCancelled:
				if err := reserveItems(ctx, tx, orderID); err != nil {
					return err
				}
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE orders SET status = COALESCE($2, status), payment_status = COALESCE($3, payment_status), updated_at = NOW() WHERE id=$1`,
			orderID, statusArg(update.Status), paymentStatusArg(update.PaymentStatus),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, orderID)
}

// restockItems returns each item's quantity to product stock.
func restockItems(ctx context.Context, tx pgx.Tx, orderID string) error {
	items, err := loadItems(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, item := range items {
		tag, err := tx.Exec(ctx, `UPDATE products SET stock = stock + $2, updated_at = NOW() WHERE id=$1`, item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return domainErrors.ErrProductMissing
		}
	}
	return nil
}

// reserveItems takes each item's quantity back out of product stock, locking
// every product row so concurrent transitions cannot lose updates.
func reserveItems(ctx context.Context, tx pgx.Tx, orderID string) error {
	items, err := loadItems(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, item := range items {
		var stock int
		err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id=$1 FOR UPDATE`, item.ProductID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrProductMissing
			}
			return err
		}
		if stock < item.Quantity {
			return domainErrors.ErrInsufficientStock
		}
		if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id=$1`, item.ProductID, item.Quantity); err != nil {
			return mapStockError(err)
		}
	}
	return nil
}

// mapStockError translates the stock check constraint into the domain error.
func mapStockError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return domainErrors.ErrInsufficientStock
	}
	return err
}

func statusArg(s *model.OrderStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func paymentStatusArg(s *model.PaymentStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func (r *orderRepository) SelectBatchForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN users u ON u.id = o.user_id
                   WHERE o.payment_status=$1 AND o.status <> $2
                   ORDER BY o.created_at
                   LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, model.PaymentStatusPending, model.OrderStatusCancelled, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.UserEmail, &o.Status, &o.PaymentStatus, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
