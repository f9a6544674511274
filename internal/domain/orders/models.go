package orders

import "time"

const (
	StatusOpen       = "open"
	StatusPreparing  = "preparing"
	StatusReady      = "ready"
	StatusDispatched = "dispatched"
	StatusClosed     = "closed"
	StatusCancelled  = "cancelled"

	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"

	TypeDineIn   = "dine_in"
	TypeTakeout  = "takeout"
	TypeDelivery = "delivery"
)

type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

type Order struct {
	ID          string     `json:"id"`
	BranchID    string     `json:"branchId"`
	OrderType   string     `json:"orderType"`
	Status      string     `json:"status"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Tip         float64    `json:"tip"`
	Total       float64    `json:"total"`
	WaiterID    string     `json:"waiterId,omitempty"`
	PaymentType string     `json:"paymentType,omitempty"`
	ClosedBy    string     `json:"closedBy,omitempty"`
	AmountPaid  float64    `json:"amountPaid"`
	Change      float64    `json:"change"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	Items       []Item     `json:"items,omitempty"`
}

func ValidPaymentType(paymentType string) bool {
	switch paymentType {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}
