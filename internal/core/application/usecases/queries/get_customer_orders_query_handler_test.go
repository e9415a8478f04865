package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetCustomerOrdersQueryHandlerTestSuite struct {
	queriesSuite
	handler queries.GetCustomerOrdersQueryHandler
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queriesSuite.SetupSuite()
	suite.handler = queries.NewGetCustomerOrdersQueryHandler(suite.db)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ListsAcrossRestaurantsNewestFirst() {
	firstRestaurant, _ := suite.createRestaurant("Trattoria")
	secondRestaurant, _ := suite.createRestaurant("Osteria")
	customerID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour)

	older := suite.createOrder(firstRestaurant, customerID, order.Table, order.Completed, base)
	newer := suite.createOrder(secondRestaurant, customerID, order.Online, order.Pending, base.Add(30*time.Minute))
	suite.createOrder(firstRestaurant, kernel.NewUUID(), order.Table, order.Pending, base)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerOrdersQuery constructor")
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
