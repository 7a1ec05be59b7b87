package statuses

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

// Service exposes membership status operations.
type Service interface {
	Create(ctx context.Context, input CreateStatusInput) (*StatusDTO, error)
	Get(ctx context.Context, contactNumber string) (*StatusDTO, error)
	List(ctx context.Context) ([]StatusDTO, error)
	Update(ctx context.Context, contactNumber string, input UpdateStatusInput) (*StatusDTO, error)
	Delete(ctx context.Context, contactNumber string) error
}

type memberLoader interface {
	FindByContactNumber(ctx context.Context, contactNumber string) (*models.Member, error)
}

type service struct {
	repo       *Repository
	memberRepo memberLoader
}

// NewService constructs a membership status service instance.
func NewService(repo *Repository, memberRepo memberLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("status repository required")
	}
	if memberRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	return &service{repo: repo, memberRepo: memberRepo}, nil
}

func (s *service) Create(ctx context.Context, input CreateStatusInput) (*StatusDTO, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "end date must exceed start date")
	}

	if err := s.ensureMember(ctx, input.ContactNumber); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindActiveByContactNumber(ctx, input.ContactNumber); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "membership status already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check active status")
	}

	status := &models.MembershipStatus{
		ContactNumber: input.ContactNumber,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create status")
	}
	return NewStatusDTO(status), nil
}

func (s *service) Get(ctx context.Context, contactNumber string) (*StatusDTO, error) {
	status, err := s.findActive(ctx, contactNumber)
	if err != nil {
		return nil, err
	}
	return NewStatusDTO(status), nil
}

func (s *service) List(ctx context.Context) ([]StatusDTO, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list statuses")
	}
	return NewStatusDTOs(records), nil
}

// Update patches the active status. Date ordering is re-validated on the
// merged values so a partial patch cannot invert the window.
func (s *service) Update(ctx context.Context, contactNumber string, input UpdateStatusInput) (*StatusDTO, error) {
	status, err := s.findActive(ctx, contactNumber)
	if err != nil {
		return nil, err
	}

	if input.StartDate == nil && input.EndDate == nil && input.IsActive == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if input.StartDate != nil {
		status.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		status.EndDate = *input.EndDate
	}
	if input.IsActive != nil {
		status.IsActive = *input.IsActive
	}

	if !status.EndDate.After(status.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "end date must exceed start date")
	}

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update status")
	}
	return NewStatusDTO(status), nil
}

func (s *service) Delete(ctx context.Context, contactNumber string) error {
	deleted, err := s.repo.DeleteByContactNumber(ctx, contactNumber)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete statuses")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "membership status not found")
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

func (s *service) findActive(ctx context.Context, contactNumber string) (*models.MembershipStatus, error) {
	status, err := s.repo.FindActiveByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "membership status not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load status")
	}
	return status, nil
}
