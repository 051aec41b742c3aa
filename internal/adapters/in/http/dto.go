package http

import (
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/generated/servers"
)

func toProducts(rows []queries.GetProductsQueryResponse) []servers.Product {
	out := make([]servers.Product, len(rows))
	for i, p := range rows {
		out[i] = servers.Product{
			Id:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.Float64(),
			Category:    p.Category,
		}
	}
	return out
}

func toOrder(r order.Record) servers.Order {
	items := make([]servers.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = servers.OrderItem{Name: it.Name, Price: it.Price.Float64(), Quantity: it.Quantity}
	}
	return servers.Order{
		OrderId:      r.OrderID,
		CustomerName: r.CustomerName,
		CreatedAt:    r.CreatedAt.UTC(),
		Status:       r.Status.String(),
		TotalAmount:  r.TotalAmount.Float64(),
		Items:        items,
	}
}
