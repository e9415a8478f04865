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

type GetRestaurantQueueQueryHandlerTestSuite struct {
	queriesSuite
	handler queries.GetRestaurantQueueQueryHandler
}

func (suite *GetRestaurantQueueQueryHandlerTestSuite) SetupSuite() {
	suite.queriesSuite.SetupSuite()
	suite.handler = queries.NewGetRestaurantQueueQueryHandler(suite.db)
}

func (suite *GetRestaurantQueueQueryHandlerTestSuite) enqueueOrder(restaurantID kernel.UUID) kernel.UUID {
	aggregate := suite.createOrder(restaurantID, kernel.NewUUID(), order.Online, order.Pending, time.Now().UTC())
	readyAt := time.Now().UTC().Add(30 * time.Minute)

	_, err := suite.queueRepo.Enqueue(context.Background(), restaurantID, aggregate.ID(), readyAt)
	suite.Require().NoError(err)

	return aggregate.ID()
}

func (suite *GetRestaurantQueueQueryHandlerTestSuite) TestHandle_ReturnsSlotsInPositionOrder() {
	restaurantID, _ := suite.createRestaurant("Trattoria")

	first := suite.enqueueOrder(restaurantID)
	second := suite.enqueueOrder(restaurantID)
	third := suite.enqueueOrder(restaurantID)

	query, err := queries.NewGetRestaurantQueueQuery(restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].OrderID.IsEqual(first))
	suite.Equal(1, result[0].Position)
	suite.True(result[1].OrderID.IsEqual(second))
	suite.Equal(2, result[1].Position)
	suite.True(result[2].OrderID.IsEqual(third))
	suite.Equal(3, result[2].Position)
}

func (suite *GetRestaurantQueueQueryHandlerTestSuite) TestHandle_IgnoresOtherRestaurants() {
	restaurantID, _ := suite.createRestaurant("Trattoria")
	otherID, _ := suite.createRestaurant("Osteria")

	suite.enqueueOrder(otherID)

	query, err := queries.NewGetRestaurantQueueQuery(restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRestaurantQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRestaurantQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRestaurantQueueQuery constructor")
}

func TestGetRestaurantQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRestaurantQueueQueryHandlerTestSuite))
}
