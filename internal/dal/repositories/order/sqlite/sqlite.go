package sqliterepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/order-capture/internal/service/models/order"
	"github.com/jmoiron/sqlx"
)

// OrderDal represents order data access layer model
type OrderDal struct {
	Id           int64   `db:"id"`
	OrderCode    string  `db:"order_code"`
	FullName     string  `db:"full_name"`
	Email        string  `db:"email"`
	Address      string  `db:"address"`
	Phone        string  `db:"phone"`
	ItemsJson    string  `db:"items_json"`
	Subtotal     float64 `db:"subtotal"`
	TotalWithVat float64 `db:"total_with_vat"`
	VatRate      float64 `db:"vat_rate"`
	CreatedAt    string  `db:"created_at"`
}

// ToModel converts OrderDal to service layer Order model
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:           o.Id,
		OrderCode:    o.OrderCode,
		FullName:     o.FullName,
		Email:        o.Email,
		Address:      o.Address,
		Phone:        o.Phone,
		ItemsJSON:    o.ItemsJson,
		Subtotal:     o.Subtotal,
		TotalWithVAT: o.TotalWithVat,
		VATRate:      o.VatRate,
		CreatedAt:    o.CreatedAt,
	}
}

// OrderDalFromModel converts service layer Order model to OrderDal
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:           o.ID,
		OrderCode:    o.OrderCode,
		FullName:     o.FullName,
		Email:        o.Email,
		Address:      o.Address,
		Phone:        o.Phone,
		ItemsJson:    o.ItemsJSON,
		Subtotal:     o.Subtotal,
		TotalWithVat: o.TotalWithVAT,
		VatRate:      o.VATRate,
		CreatedAt:    o.CreatedAt,
	}
}

type SqliteOrderRepository struct {
	conn sqlx.ExtContext
}

func NewSqliteOrderRepository(conn sqlx.ExtContext) *SqliteOrderRepository {
	return &SqliteOrderRepository{
		conn: conn,
	}
}

// Insert appends a single order row and returns the assigned id.
func (r *SqliteOrderRepository) Insert(ctx context.Context, ord order.Order) (int64, error) {
	dal := OrderDalFromModel(&ord)

	query, args, err := sq.Insert("orders").
		Columns(
			"order_code",
			"full_name",
			"email",
			"address",
			"phone",
			"items_json",
			"subtotal",
			"total_with_vat",
			"vat_rate",
			"created_at",
		).
		Values(
			dal.OrderCode,
			dal.FullName,
			dal.Email,
			dal.Address,
			dal.Phone,
			dal.ItemsJson,
			dal.Subtotal,
			dal.TotalWithVat,
			dal.VatRate,
			dal.CreatedAt,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted order id: %w", err)
	}

	return id, nil
}

// List retrieves all stored orders ordered by created_at descending.
func (r *SqliteOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	query, args, err := sq.Select(
		"id",
		"order_code",
		"full_name",
		"email",
		"address",
		"phone",
		"items_json",
		"subtotal",
		"total_with_vat",
		"vat_rate",
		"created_at",
	).
		From("orders").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		if err := rows.StructScan(&dal); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
