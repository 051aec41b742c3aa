package redis_test

import (
	"errors"
	"testing"
	"time"

	redisadapter "bakery/internal/adapters/out/redis"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/testutil"

	"github.com/stretchr/testify/suite"
)

type ProductCacheIntegrationTestSuite struct {
	suite.Suite
	cache *redisadapter.ProductCache
}

func (suite *ProductCacheIntegrationTestSuite) SetupSuite() {
	url := testutil.StartRedis(suite.T())

	cache, err := redisadapter.NewProductCache(suite.T().Context(), url)
	suite.Require().NoError(err)
	suite.cache = cache
}

func (suite *ProductCacheIntegrationTestSuite) TearDownSuite() {
	if suite.cache != nil {
		_ = suite.cache.Close()
	}
}

func (suite *ProductCacheIntegrationTestSuite) TestGet_Miss() {
	_, err := suite.cache.Get(suite.T().Context(), "absent")
	suite.Require().ErrorIs(err, ports.ErrCacheMiss)
}

func (suite *ProductCacheIntegrationTestSuite) TestSetThenGet() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.cache.Set(ctx, "all_products", []byte(`[{"name":"Croissant"}]`), time.Minute))

	value, err := suite.cache.Get(ctx, "all_products")
	suite.Require().NoError(err)
	suite.JSONEq(`[{"name":"Croissant"}]`, string(value))
}

func (suite *ProductCacheIntegrationTestSuite) TestEntryExpires() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.cache.Set(ctx, "short", []byte("x"), time.Second))

	suite.Eventually(func() bool {
		_, err := suite.cache.Get(ctx, "short")
		return errors.Is(err, ports.ErrCacheMiss)
	}, 5*time.Second, 100*time.Millisecond)
}

func (suite *ProductCacheIntegrationTestSuite) TestNewProductCache_BadURL() {
	_, err := redisadapter.NewProductCache(suite.T().Context(), "not-a-url")
	suite.Require().Error(err)
}

func TestProductCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductCacheIntegrationTestSuite))
}
