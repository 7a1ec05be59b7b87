package models

import "time"

// CheckinRecord is one gym visit. A record with CheckedOut=false is "open";
// a member can have at most one open record at a time.
type CheckinRecord struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ContactNumber string     `gorm:"column:contact_number;size:20;not null;index"`
	CheckedInAt   time.Time  `gorm:"column:checked_in_at;not null"`
	CheckedOutAt  *time.Time `gorm:"column:checked_out_at"`
	CheckedIn     bool       `gorm:"column:checked_in;not null;default:true"`
	CheckedOut    bool       `gorm:"column:checked_out;not null;default:false"`
}
