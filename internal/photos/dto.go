package photos

import (
	"encoding/base64"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// PhotoDTO is the member photo payload returned to clients. Image bytes
// travel base64-encoded.
type PhotoDTO struct {
	PhotoName     string `json:"photoName"`
	ContactNumber string `json:"contactNumber"`
	Data          string `json:"data"`
	IsActive      bool   `json:"isActive"`
}

// PhotoSummaryDTO lists photo metadata without the image payload.
type PhotoSummaryDTO struct {
	PhotoName     string `json:"photoName"`
	ContactNumber string `json:"contactNumber"`
	IsActive      bool   `json:"isActive"`
}

func NewPhotoDTO(photo *models.MemberPhoto) *PhotoDTO {
	return &PhotoDTO{
		PhotoName:     photo.PhotoName,
		ContactNumber: photo.ContactNumber,
		Data:          base64.StdEncoding.EncodeToString(photo.Data),
		IsActive:      photo.IsActive,
	}
}

func NewPhotoSummaryDTOs(records []models.MemberPhoto) []PhotoSummaryDTO {
	result := make([]PhotoSummaryDTO, len(records))
	for i, photo := range records {
		result[i] = PhotoSummaryDTO{
			PhotoName:     photo.PhotoName,
			ContactNumber: photo.ContactNumber,
			IsActive:      photo.IsActive,
		}
	}
	return result
}
