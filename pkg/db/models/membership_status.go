package models

import "time"

// MembershipStatus is one membership window for a member. The "one active
// status per member" rule is enforced at create time, not by the schema.
type MembershipStatus struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ContactNumber string    `gorm:"column:contact_number;size:20;not null;index"`
	StartDate     time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate       time.Time `gorm:"column:end_date;type:date;not null"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
}
