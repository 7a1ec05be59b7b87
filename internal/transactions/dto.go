package transactions

import (
	"time"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	"github.com/yuchialin/gymdesk-backend/pkg/enums"
)

// TransactionDTO is the purchase record payload returned to clients.
type TransactionDTO struct {
	ID            int64   `json:"id"`
	ContactNumber string  `json:"contactNumber"`
	TransactedAt  string  `json:"transactedAt"`
	ItemCode      string  `json:"itemCode"`
	Count         int     `json:"count"`
	UnitPrice     int     `json:"unitPrice"`
	Discount      float64 `json:"discount"`
	TotalAmount   int     `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// CreateTransactionInput holds the validated payload to record a sale. A nil
// UnitPrice means "charge the current catalog price".
type CreateTransactionInput struct {
	ContactNumber string
	ItemCode      string
	Count         int
	UnitPrice     *int
	Discount      *float64
	PaymentMethod enums.PaymentMethod
}

// UpdateTransactionInput holds optional mutation values for a recorded sale.
type UpdateTransactionInput struct {
	Count         *int
	UnitPrice     *int
	Discount      *float64
	PaymentMethod *enums.PaymentMethod
}

func NewTransactionDTO(record *models.TransactionRecord) *TransactionDTO {
	return &TransactionDTO{
		ID:            record.ID,
		ContactNumber: record.ContactNumber,
		TransactedAt:  record.TransactedAt.Format(time.RFC3339),
		ItemCode:      record.ItemCode,
		Count:         record.Count,
		UnitPrice:     record.UnitPrice,
		Discount:      record.Discount,
		TotalAmount:   record.TotalAmount,
		PaymentMethod: string(record.PaymentMethod),
	}
}

func NewTransactionDTOs(records []models.TransactionRecord) []TransactionDTO {
	result := make([]TransactionDTO, len(records))
	for i := range records {
		result[i] = *NewTransactionDTO(&records[i])
	}
	return result
}
