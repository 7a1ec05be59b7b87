package models

// Product is a catalog item sold over the counter. The item code shares a
// namespace with MembershipPlan codes (P-prefix vs M-prefix by convention).
type Product struct {
	ItemCode  string `gorm:"column:item_code;primaryKey;size:20"`
	SalePrice int    `gorm:"column:sale_price;not null;check:sale_price > 0"`
	Name      string `gorm:"column:name;size:100;not null"`
	Image     []byte `gorm:"column:image"`
}
