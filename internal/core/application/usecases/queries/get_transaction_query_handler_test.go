package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetTransactionQueryHandlerTestSuite struct {
	queriesSuite
	handler queries.GetTransactionQueryHandler
}

func (suite *GetTransactionQueryHandlerTestSuite) SetupSuite() {
	suite.queriesSuite.SetupSuite()
	suite.handler = queries.NewGetTransactionQueryHandler(suite.db)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_OwnerSeesTransaction() {
	restaurantID, ownerID := suite.createRestaurant("Trattoria")
	transaction := suite.createTransaction(restaurantID, 2026, time.Now().UTC())

	query, err := queries.NewGetTransactionQuery(transaction.ID(), ownerID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(transaction.ID()))
	suite.True(resp.RestaurantID.IsEqual(restaurantID))
	suite.Equal(transaction.ReceiptNumber(), resp.ReceiptNumber)
	suite.True(resp.Amount.IsEqual(suite.mustMoney("22.40")))
	suite.True(resp.TaxA.IsEqual(suite.mustMoney("1.00")))
	suite.True(resp.TaxB.IsEqual(suite.mustMoney("1.40")))
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_ForeignOwnerIsDenied() {
	restaurantID, _ := suite.createRestaurant("Trattoria")
	_, foreignOwnerID := suite.createRestaurant("Osteria")
	transaction := suite.createTransaction(restaurantID, 2026, time.Now().UTC())

	query, err := queries.NewGetTransactionQuery(transaction.ID(), foreignOwnerID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_MissingTransaction_ReturnsNotFound() {
	query, err := queries.NewGetTransactionQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTransactionQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetTransactionQuery constructor")
}

func TestGetTransactionQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTransactionQueryHandlerTestSuite))
}
