package photos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db"
	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

// Service exposes member photo operations.
type Service interface {
	Create(ctx context.Context, contactNumber string, data []byte) (*PhotoDTO, error)
	Get(ctx context.Context, contactNumber string) (*PhotoDTO, error)
	List(ctx context.Context) ([]PhotoSummaryDTO, error)
	Update(ctx context.Context, contactNumber string, data []byte) (*PhotoDTO, error)
	Delete(ctx context.Context, contactNumber string) error
}

type memberLoader interface {
	FindByContactNumber(ctx context.Context, contactNumber string) (*models.Member, error)
}

type service struct {
	repo       *Repository
	memberRepo memberLoader
	dbClient   *db.Client
	now        func() time.Time
}

// NewService constructs a photo service instance.
func NewService(repo *Repository, memberRepo memberLoader, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("photo repository required")
	}
	if memberRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, memberRepo: memberRepo, dbClient: dbClient, now: time.Now}, nil
}

// Create rotates the member's photo: the previous active row is kept as
// history, deactivated, and the new upload becomes the active one. Both steps
// share a transaction.
func (s *service) Create(ctx context.Context, contactNumber string, data []byte) (*PhotoDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo data is required")
	}

	photo := &models.MemberPhoto{
		PhotoName:     photoName(contactNumber, s.now()),
		Data:          data,
		ContactNumber: contactNumber,
		IsActive:      true,
	}
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeactivateByContactNumber(ctx, contactNumber); err != nil {
			return err
		}
		return txRepo.Create(ctx, photo)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store photo")
	}
	return NewPhotoDTO(photo), nil
}

func (s *service) Get(ctx context.Context, contactNumber string) (*PhotoDTO, error) {
	photo, err := s.findActive(ctx, contactNumber)
	if err != nil {
		return nil, err
	}
	return NewPhotoDTO(photo), nil
}

func (s *service) List(ctx context.Context) ([]PhotoSummaryDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list photos")
	}
	return NewPhotoSummaryDTOs(records), nil
}

// Update replaces the bytes of the active photo in place; the photo name and
// history stay as they are.
func (s *service) Update(ctx context.Context, contactNumber string, data []byte) (*PhotoDTO, error) {
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo data is required")
	}

	photo, err := s.findActive(ctx, contactNumber)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceData(ctx, photo.PhotoName, data); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "replace photo data")
	}
	photo.Data = data
	return NewPhotoDTO(photo), nil
}

func (s *service) Delete(ctx context.Context, contactNumber string) error {
	deleted, err := s.repo.DeleteByContactNumber(ctx, contactNumber)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete photos")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "member photo not found")
	}
	return nil
}

// photoName stamps with nanoseconds so two uploads in the same second cannot
// collide on the primary key. The longest possible name, built from a 20-char
// contact number and a 19-digit timestamp, must stay within the 64-char
// photo_name column.
func photoName(contactNumber string, at time.Time) string {
	return fmt.Sprintf("member_%s_%d.jpg", contactNumber, at.UTC().UnixNano())
}

func (s *service) ensureMember(ctx context.Context, contactNumber string) error {
	if _, err := s.memberRepo.FindByContactNumber(ctx, contactNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member")
	}
	return nil
}

func (s *service) findActive(ctx context.Context, contactNumber string) (*models.MemberPhoto, error) {
	photo, err := s.repo.FindActiveByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member photo not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load photo")
	}
	return photo, nil
}
