package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its lines from the database.
// Line prices are the prices stored when the order was placed.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order status queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order snapshot, or an errs.ObjectNotFoundError when no
// order has the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Record, error) {
	if err := query.Validate(); err != nil {
		return order.Record{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	var head struct {
		CustomerName string
		Status       string
		TotalAmount  decimal.Decimal
		CreatedAt    time.Time
	}
	result := db.Raw(`
		SELECT customer_name, status, total_amount, created_at
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Scan(&head)
	if result.Error != nil {
		return order.Record{}, result.Error
	}
	if result.RowsAffected == 0 {
		return order.Record{}, errs.NewObjectNotFoundError("order", id.String())
	}

	total, err := kernel.NewMoney(head.TotalAmount)
	if err != nil {
		return order.Record{}, err
	}

	record := order.Record{
		OrderID:      id.String(),
		CustomerName: head.CustomerName,
		CreatedAt:    head.CreatedAt.UTC(),
		Status:       order.Status(head.Status),
		TotalAmount:  total,
		Items:        make([]order.RecordItem, 0),
	}

	rows, err := db.Raw(`
		SELECT p.name, oi.price, oi.quantity
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, id.Bytes()).Rows()
	if err != nil {
		return order.Record{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item order.RecordItem
		var price decimal.Decimal
		if err = rows.Scan(&item.Name, &price, &item.Quantity); err != nil {
			return order.Record{}, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return order.Record{}, err
		}
		record.Items = append(record.Items, item)
	}

	if err = rows.Err(); err != nil {
		return order.Record{}, err
	}

	return record, nil
}
