package view_test

import (
	"context"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCatalogLoader struct{ mock.Mock }

func (m *MockCatalogLoader) Handle(ctx context.Context, query queries.LoadCatalogQuery) (*catalog.Catalog, error) {
	args := m.Called(ctx, query)
	if c, ok := args.Get(0).(*catalog.Catalog); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderSubmitHandler struct{ mock.Mock }

func (m *MockOrderSubmitHandler) Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockStatusLookupHandler struct{ mock.Mock }

func (m *MockStatusLookupHandler) Handle(ctx context.Context, query queries.LookupOrderStatusQuery) (order.Record, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(order.Record), args.Error(1)
}
