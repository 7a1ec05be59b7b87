package models

import "time"

// Member is the canonical member record. The contact (phone) number doubles as
// the primary key across the whole schema.
type Member struct {
	ContactNumber   string    `gorm:"column:contact_number;primaryKey;size:20"`
	Name            string    `gorm:"column:name;size:50;not null"`
	Email           string    `gorm:"column:email;size:100;not null"`
	DateOfBirth     time.Time `gorm:"column:date_of_birth;type:date;not null"`
	EmergencyName   string    `gorm:"column:emergency_name;size:25;not null"`
	EmergencyNumber string    `gorm:"column:emergency_number;size:20;not null"`
	Balance         int       `gorm:"column:balance;not null;default:0"`
	RewardPoints    int       `gorm:"column:reward_points;not null;default:100"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`

	Photos       []MemberPhoto       `gorm:"foreignKey:ContactNumber;references:ContactNumber;constraint:OnDelete:CASCADE"`
	Statuses     []MembershipStatus  `gorm:"foreignKey:ContactNumber;references:ContactNumber;constraint:OnDelete:CASCADE"`
	Checkins     []CheckinRecord     `gorm:"foreignKey:ContactNumber;references:ContactNumber;constraint:OnDelete:CASCADE"`
	Transactions []TransactionRecord `gorm:"foreignKey:ContactNumber;references:ContactNumber;constraint:OnDelete:CASCADE"`
}
