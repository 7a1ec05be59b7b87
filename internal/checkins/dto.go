package checkins

import (
	"time"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// CheckinDTO is the visit record payload returned to clients.
type CheckinDTO struct {
	ID            int64   `json:"id"`
	ContactNumber string  `json:"contactNumber"`
	CheckedInAt   string  `json:"checkedInAt"`
	CheckedOutAt  *string `json:"checkedOutAt"`
	CheckedIn     bool    `json:"checkedIn"`
	CheckedOut    bool    `json:"checkedOut"`
}

func NewCheckinDTO(record *models.CheckinRecord) *CheckinDTO {
	dto := &CheckinDTO{
		ID:            record.ID,
		ContactNumber: record.ContactNumber,
		CheckedInAt:   record.CheckedInAt.Format(time.RFC3339),
		CheckedIn:     record.CheckedIn,
		CheckedOut:    record.CheckedOut,
	}
	if record.CheckedOutAt != nil {
		out := record.CheckedOutAt.Format(time.RFC3339)
		dto.CheckedOutAt = &out
	}
	return dto
}

func NewCheckinDTOs(records []models.CheckinRecord) []CheckinDTO {
	result := make([]CheckinDTO, len(records))
	for i := range records {
		result[i] = *NewCheckinDTO(&records[i])
	}
	return result
}
