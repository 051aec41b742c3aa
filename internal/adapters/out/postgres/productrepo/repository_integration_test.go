package productrepo_test

import (
	"context"
	"sort"
	"testing"

	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	suite.db, _ = testutil.StartPostgres(suite.T())
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_ReturnsSeededCatalogByName() {
	products, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Require().NotEmpty(products)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name())
	}
	suite.True(sort.StringsAreSorted(names), "products must be ordered by name: %v", names)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_ReturnsOnlyExisting() {
	croissantID, err := kernel.UUIDFromString(testutil.CroissantID)
	suite.Require().NoError(err)

	products, err := suite.repository.GetByIDs(context.Background(), []kernel.UUID{croissantID, kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)

	suite.Equal(testutil.CroissantID, products[0].ID())
	suite.Equal("Croissant", products[0].Name())
	suite.Equal("2.50", products[0].Price().String())
	suite.Equal("pastry", products[0].Category())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_Empty() {
	products, err := suite.repository.GetByIDs(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Empty(products)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_InvalidID() {
	_, err := suite.repository.GetByIDs(context.Background(), []kernel.UUID{{}})
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
