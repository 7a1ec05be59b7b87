package models

// MembershipPlan is a purchasable membership offering.
type MembershipPlan struct {
	ItemCode       string `gorm:"column:item_code;primaryKey;size:20"`
	SalePrice      int    `gorm:"column:sale_price;not null;check:sale_price > 0"`
	PlanType       string `gorm:"column:plan_type;size:50;not null"`
	DurationMonths int    `gorm:"column:duration_months;not null;check:duration_months > 0"`
}
