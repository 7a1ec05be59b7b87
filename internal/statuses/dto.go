package statuses

import (
	"time"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

const dateLayout = "2006-01-02"

// StatusDTO is the membership status payload returned to clients.
type StatusDTO struct {
	ID            int64  `json:"id"`
	ContactNumber string `json:"contactNumber"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	IsActive      bool   `json:"isActive"`
}

// CreateStatusInput holds the validated payload to open a membership window.
type CreateStatusInput struct {
	ContactNumber string
	StartDate     time.Time
	EndDate       time.Time
}

// UpdateStatusInput holds optional mutation values for the active status.
type UpdateStatusInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
}

func NewStatusDTO(status *models.MembershipStatus) *StatusDTO {
	return &StatusDTO{
		ID:            status.ID,
		ContactNumber: status.ContactNumber,
		StartDate:     status.StartDate.Format(dateLayout),
		EndDate:       status.EndDate.Format(dateLayout),
		IsActive:      status.IsActive,
	}
}

func NewStatusDTOs(records []models.MembershipStatus) []StatusDTO {
	result := make([]StatusDTO, len(records))
	for i := range records {
		result[i] = *NewStatusDTO(&records[i])
	}
	return result
}
