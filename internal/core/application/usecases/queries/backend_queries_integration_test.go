package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type BackendQueriesTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *BackendQueriesTestSuite) SetupSuite() {
	suite.db, _ = testutil.StartPostgres(suite.T())
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *BackendQueriesTestSuite) SetupTest() {
	testutil.ResetOrders(suite.T(), suite.db)
}

func (suite *BackendQueriesTestSuite) TestGetProducts_OrderedByName() {
	handler := queries.NewGetProductsQueryHandler(suite.db)

	products, err := handler.Handle(context.Background(), queries.NewGetProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(products, 8)

	for i := 1; i < len(products); i++ {
		suite.LessOrEqual(products[i-1].Name, products[i].Name)
	}

	var croissant *queries.GetProductsQueryResponse
	for i := range products {
		if products[i].ID.String() == testutil.CroissantID {
			croissant = &products[i]
		}
	}
	suite.Require().NotNil(croissant)
	suite.Equal("Croissant", croissant.Name)
	suite.Equal("2.50", croissant.Price.String())
	suite.Equal("pastry", croissant.Category)
}

func (suite *BackendQueriesTestSuite) TestGetProducts_NotConstructed() {
	handler := queries.NewGetProductsQueryHandler(suite.db)
	_, err := handler.Handle(context.Background(), queries.GetProductsQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetProductsQueryIsNotConstructed)
}

func (suite *BackendQueriesTestSuite) TestGetOrder_ReturnsRecord() {
	ctx := context.Background()
	croissantID, err := kernel.UUIDFromString(testutil.CroissantID)
	suite.Require().NoError(err)
	price, err := kernel.MoneyFromString("2.50")
	suite.Require().NoError(err)
	item, err := order.NewItem(croissantID, "Croissant", price, 2)
	suite.Require().NoError(err)
	placed, err := order.NewOrder(kernel.NewUUID(), "Ann", "a@x.com", []order.Item{item}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, placed))

	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	record, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(placed.ID().String(), record.OrderID)
	suite.Equal("Ann", record.CustomerName)
	suite.Equal(order.Pending, record.Status)
	suite.Equal("5.00", record.TotalAmount.String())
	suite.Require().Len(record.Items, 1)
	suite.Equal("Croissant", record.Items[0].Name)
	suite.Equal(2, record.Items[0].Quantity)
	suite.Equal("5.00", record.Items[0].Amount().String())
}

func (suite *BackendQueriesTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestBackendQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(BackendQueriesTestSuite))
}
