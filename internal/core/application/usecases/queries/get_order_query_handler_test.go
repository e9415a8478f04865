package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderQueryHandlerTestSuite struct {
	queriesSuite
	handler queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	suite.queriesSuite.SetupSuite()
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CustomerSeesOwnOrder() {
	restaurantID, _ := suite.createRestaurant("Trattoria")
	customerID := kernel.NewUUID()
	aggregate := suite.createOrder(restaurantID, customerID, order.Table, order.Pending, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(aggregate.ID(), customerID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(aggregate.ID()))
	suite.Equal(order.Table, resp.Type)
	suite.Equal(order.Pending, resp.Status)
	suite.Equal("7", resp.TableNumber)
	suite.True(resp.Total.IsEqual(suite.mustMoney("22.40")))
	suite.Require().Len(resp.Items, 1)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.True(resp.Items[0].UnitPrice.IsEqual(suite.mustMoney("10.00")))
	suite.Nil(resp.QueuePosition)
	suite.Nil(resp.EstimatedReadyTime)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OwnerSeesQueuedOrderWithSlot() {
	restaurantID, ownerID := suite.createRestaurant("Trattoria")
	aggregate := suite.createOrder(restaurantID, kernel.NewUUID(), order.Online, order.Pending, time.Now().UTC())

	readyAt := time.Now().UTC().Add(30 * time.Minute).Truncate(time.Microsecond)
	_, err := suite.queueRepo.Enqueue(context.Background(), restaurantID, aggregate.ID(), readyAt)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), ownerID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.Online, resp.Type)
	suite.Require().NotNil(resp.QueuePosition)
	suite.Equal(1, *resp.QueuePosition)
	suite.Require().NotNil(resp.EstimatedReadyTime)
	suite.True(readyAt.Equal(resp.EstimatedReadyTime.UTC()))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_StrangerIsDenied() {
	restaurantID, _ := suite.createRestaurant("Trattoria")
	aggregate := suite.createOrder(restaurantID, kernel.NewUUID(), order.Table, order.Pending, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(aggregate.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
