package members

import (
	"time"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

const dateLayout = "2006-01-02"

// MemberDTO is the member payload returned to clients.
type MemberDTO struct {
	ContactNumber   string `json:"contactNumber"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	DateOfBirth     string `json:"dateOfBirth"`
	EmergencyName   string `json:"emergencyName"`
	EmergencyNumber string `json:"emergencyNumber"`
	Balance         int    `json:"balance"`
	RewardPoints    int    `json:"rewardPoints"`
	CreatedAt       string `json:"createdAt"`
}

// CreateMemberInput holds the validated payload to register a member.
type CreateMemberInput struct {
	ContactNumber   string
	Name            string
	Email           string
	DateOfBirth     time.Time
	EmergencyName   string
	EmergencyNumber string
	Balance         *int
	RewardPoints    *int
}

// UpdateMemberInput holds optional mutation values. The contact number itself
// is immutable; it keys every dependent table.
type UpdateMemberInput struct {
	Name            *string
	Email           *string
	DateOfBirth     *time.Time
	EmergencyName   *string
	EmergencyNumber *string
	Balance         *int
	RewardPoints    *int
}

// NewMemberDTO builds a DTO from the persisted model.
func NewMemberDTO(member *models.Member) *MemberDTO {
	return &MemberDTO{
		ContactNumber:   member.ContactNumber,
		Name:            member.Name,
		Email:           member.Email,
		DateOfBirth:     member.DateOfBirth.Format(dateLayout),
		EmergencyName:   member.EmergencyName,
		EmergencyNumber: member.EmergencyNumber,
		Balance:         member.Balance,
		RewardPoints:    member.RewardPoints,
		CreatedAt:       member.CreatedAt.Format(time.RFC3339),
	}
}

// NewMemberDTOs maps a model slice preserving order.
func NewMemberDTOs(records []models.Member) []MemberDTO {
	result := make([]MemberDTO, len(records))
	for i := range records {
		result[i] = *NewMemberDTO(&records[i])
	}
	return result
}
