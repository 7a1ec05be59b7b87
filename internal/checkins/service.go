package checkins

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

// Service exposes gym visit logging operations.
type Service interface {
	Create(ctx context.Context, contactNumber string) (*CheckinDTO, error)
	CheckOut(ctx context.Context, contactNumber string) (*CheckinDTO, error)
	Get(ctx context.Context, contactNumber string) ([]CheckinDTO, error)
	List(ctx context.Context) ([]CheckinDTO, error)
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

// NewService constructs a check-in service instance.
func NewService(repo *Repository, memberRepo memberLoader, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkin repository required")
	}
	if memberRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, memberRepo: memberRepo, dbClient: dbClient, now: time.Now}, nil
}

// Create opens a visit. The open-record check and the insert share one
// transaction so two concurrent check-ins cannot both slip through.
func (s *service) Create(ctx context.Context, contactNumber string) (*CheckinDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}

	var record *models.CheckinRecord
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		if _, err := txRepo.FindOpenByContactNumber(ctx, contactNumber); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "member already has an open check-in record")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check open record")
		}

		record = &models.CheckinRecord{
			ContactNumber: contactNumber,
			CheckedInAt:   s.now().UTC(),
			CheckedIn:     true,
			CheckedOut:    false,
		}
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create check-in")
	}
	return NewCheckinDTO(record), nil
}

// CheckOut closes the member's latest open record.
func (s *service) CheckOut(ctx context.Context, contactNumber string) (*CheckinDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}

	total, err := s.repo.CountByContactNumber(ctx, contactNumber)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count records")
	}
	if total == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "check-in record not found")
	}

	record, err := s.repo.FindOpenByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "record already checked out")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load open record")
	}

	out := s.now().UTC()
	record.CheckedOutAt = &out
	record.CheckedOut = true
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "close record")
	}
	return NewCheckinDTO(record), nil
}

func (s *service) Get(ctx context.Context, contactNumber string) ([]CheckinDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}
	records, err := s.repo.ListByContactNumber(ctx, contactNumber)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list records")
	}
	return NewCheckinDTOs(records), nil
}

func (s *service) List(ctx context.Context) ([]CheckinDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list records")
	}
	return NewCheckinDTOs(records), nil
}

func (s *service) Delete(ctx context.Context, contactNumber string) error {
	deleted, err := s.repo.DeleteByContactNumber(ctx, contactNumber)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete records")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "check-in record not found")
	}
	return nil
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
