// Package orderrepo maps order aggregates to the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table with its items.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"size:100;not null"`
	CustomerEmail string          `gorm:"size:100;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status        string          `gorm:"size:20;not null;index"`
	CreatedAt     time.Time       `gorm:"type:timestamptz;not null"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one row of the order_items table. Price is the unit
// price at the time the order was placed.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// itemRow is an order item joined with its product name.
type itemRow struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: it.ProductID().Bytes(),
			Quantity:  it.Quantity(),
			Price:     it.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerName:  o.CustomerName(),
		CustomerEmail: o.CustomerEmail(),
		TotalAmount:   o.TotalAmount().Decimal(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO, rows []itemRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rows))
	for _, row := range rows {
		productID, idErr := kernel.UUIDFromBytes(row.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(row.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(productID, row.Name, price, row.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerEmail,
		items,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
