package models

// MemberPhoto stores the profile image bytes. At most one row per member is
// active; uploading a new photo deactivates the previous one.
type MemberPhoto struct {
	PhotoName     string `gorm:"column:photo_name;primaryKey;size:64"`
	Data          []byte `gorm:"column:data;not null"`
	ContactNumber string `gorm:"column:contact_number;size:20;not null;index"`
	IsActive      bool   `gorm:"column:is_active;not null;default:true"`
}
