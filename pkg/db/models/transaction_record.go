package models

import (
	"time"

	"github.com/yuchialin/gymdesk-backend/pkg/enums"
)

// TransactionRecord is one purchase line. Price and count are denormalized so
// history stays readable after a catalog item is deleted.
type TransactionRecord struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement"`
	ContactNumber string              `gorm:"column:contact_number;size:20;not null;index"`
	TransactedAt  time.Time           `gorm:"column:transacted_at;not null"`
	ItemCode      string              `gorm:"column:item_code;size:20;not null"`
	Count         int                 `gorm:"column:count;not null;check:count > 0"`
	UnitPrice     int                 `gorm:"column:unit_price;not null;check:unit_price > 0"`
	Discount      float64             `gorm:"column:discount;not null;default:1;check:discount > 0 AND discount <= 1"`
	TotalAmount   int                 `gorm:"column:total_amount;not null;check:total_amount > 0"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;size:20;not null"`
}
