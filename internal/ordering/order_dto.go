package ordering

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	DeliveryDate string `json:"delivery_date" binding:"required"`
	ProductID    string `json:"product_id" binding:"required,uuid"`
	Quantity     int    `json:"quantity" binding:"required,gte=1"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateOrderRequest is a partial patch: nil fields keep their stored value.
type UpdateOrderRequest struct {
	Quantity *int    `json:"quantity" binding:"omitempty,gte=1"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
}

type OrderResponse struct {
	ID                string          `json:"id"`
	DeliveryDate      string          `json:"delivery_date"`
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	UserPaymentAmount decimal.Decimal `json:"user_payment_amount"`
	Notes             string          `json:"notes"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type HistoryFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

type OrderableDate struct {
	Date     string `json:"date"`
	CutoffAt string `json:"cutoff_at"`
}

type AvailableDatesResponse struct {
	Dates        []OrderableDate `json:"dates"`
	DeadlineTime string          `json:"deadline_time"`
}

// DeadlineCheckResponse answers the deadline question only: a date past the
// order window can still be before its deadline.
type DeadlineCheckResponse struct {
	Date             string `json:"date"`
	IsBeforeDeadline bool   `json:"is_before_deadline"`
	Deadline         string `json:"deadline"`
	DeadlineTime     string `json:"deadline_time"`
}

func mapToOrderResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID.String(),
		DeliveryDate:      o.DeliveryDate.Format("2006-01-02"),
		ProductID:         o.ProductID.String(),
		ProductName:       o.ProductName,
		Quantity:          o.Quantity,
		UnitPrice:         o.UnitPrice,
		TotalAmount:       o.TotalAmount,
		UserPaymentAmount: o.UserPaymentAmount,
		Notes:             o.Notes,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt.Format(time3339),
		UpdatedAt:         o.UpdatedAt.Format(time3339),
	}
}

const time3339 = "2006-01-02T15:04:05Z07:00"

func mapToOrderListResponse(orders []Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapToOrderResponse(o))
	}
	return resp
}
