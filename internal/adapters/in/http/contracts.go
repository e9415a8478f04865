package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The customer
// placing the order comes from the identity headers, not the body.
type CreateOrderRequest struct {
	RestaurantID  string             `json:"restaurant_id"`
	Type          string             `json:"type"`
	TableNumber   string             `json:"table_number,omitempty"`
	RequestedTime *time.Time         `json:"requested_time,omitempty"`
	Items         []OrderLineRequest `json:"items"`
	Tip           string             `json:"tip,omitempty"`
}

// OrderLineRequest is one requested line of a new order.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderResponse carries the identifier of the newly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummaryResponse is the list representation of an order.
type OrderSummaryResponse struct {
	ID            string     `json:"id"`
	RestaurantID  string     `json:"restaurant_id"`
	CustomerID    string     `json:"customer_id"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	TableNumber   string     `json:"table_number,omitempty"`
	RequestedTime *time.Time `json:"requested_time,omitempty"`
	Subtotal      string     `json:"subtotal"`
	TaxA          string     `json:"tax_a"`
	TaxB          string     `json:"tax_b"`
	Tip           string     `json:"tip"`
	Total         string     `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
}

// OrderResponse is the full representation of one order.
type OrderResponse struct {
	OrderSummaryResponse

	Items []OrderItemResponse `json:"items"`

	QueuePosition      *int       `json:"queue_position,omitempty"`
	EstimatedReadyTime *time.Time `json:"estimated_ready_time,omitempty"`
}

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

// QueueSlotResponse is one slot of a restaurant's ready queue.
type QueueSlotResponse struct {
	OrderID            string    `json:"order_id"`
	Position           int       `json:"position"`
	EstimatedReadyTime time.Time `json:"estimated_ready_time"`
}

// MenuItemResponse is one item of a restaurant's menu.
type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// TransactionResponse is one recorded financial transaction.
type TransactionResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	RestaurantID  string    `json:"restaurant_id"`
	Amount        string    `json:"amount"`
	TaxA          string    `json:"tax_a"`
	TaxB          string    `json:"tax_b"`
	Tip           string    `json:"tip"`
	FiscalYear    int       `json:"fiscal_year"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// SalesReportBucketResponse is one period of a sales report.
type SalesReportBucketResponse struct {
	PeriodStart time.Time `json:"period_start"`
	Sales       string    `json:"sales"`
	TaxA        string    `json:"tax_a"`
	TaxB        string    `json:"tax_b"`
	Tips        string    `json:"tips"`
	Orders      int64     `json:"orders"`
}

// TaxSummaryResponse is one fiscal year's tax totals.
type TaxSummaryResponse struct {
	FiscalYear   int    `json:"fiscal_year"`
	Sales        string `json:"sales"`
	TaxA         string `json:"tax_a"`
	TaxB         string `json:"tax_b"`
	Tips         string `json:"tips"`
	Transactions int64  `json:"transactions"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:            summary.ID.String(),
		RestaurantID:  summary.RestaurantID.String(),
		CustomerID:    summary.CustomerID.String(),
		Type:          summary.Type.String(),
		Status:        summary.Status.String(),
		TableNumber:   summary.TableNumber,
		RequestedTime: summary.RequestedTime,
		Subtotal:      summary.Subtotal.String(),
		TaxA:          summary.TaxA.String(),
		TaxB:          summary.TaxB.String(),
		Tip:           summary.Tip.String(),
		Total:         summary.Total.String(),
		CreatedAt:     summary.CreatedAt,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	responses := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toOrderSummaryResponse(summary)
	}
	return responses
}

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
		}
	}

	return OrderResponse{
		OrderSummaryResponse: toOrderSummaryResponse(resp.OrderSummary),
		Items:                items,
		QueuePosition:        resp.QueuePosition,
		EstimatedReadyTime:   resp.EstimatedReadyTime,
	}
}

func toMenuItemResponses(items []*menu.Item) []MenuItemResponse {
	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = MenuItemResponse{
			ID:        item.ID().String(),
			Name:      item.Name(),
			Price:     item.Price().String(),
			Category:  item.Category(),
			Available: item.Available(),
		}
	}
	return responses
}

func toTransactionResponse(transaction queries.TransactionResponse) TransactionResponse {
	return TransactionResponse{
		ID:            transaction.ID.String(),
		OrderID:       transaction.OrderID.String(),
		RestaurantID:  transaction.RestaurantID.String(),
		Amount:        transaction.Amount.String(),
		TaxA:          transaction.TaxA.String(),
		TaxB:          transaction.TaxB.String(),
		Tip:           transaction.Tip.String(),
		FiscalYear:    transaction.FiscalYear,
		ReceiptNumber: transaction.ReceiptNumber,
		CreatedAt:     transaction.CreatedAt,
	}
}

func toTransactionResponses(transactions []queries.TransactionResponse) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = toTransactionResponse(transaction)
	}
	return responses
}
