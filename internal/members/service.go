package members

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db"
	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

const defaultRewardPoints = 100

// Service exposes member management operations.
type Service interface {
	Create(ctx context.Context, input CreateMemberInput) (*MemberDTO, error)
	Get(ctx context.Context, contactNumber string) (*MemberDTO, error)
	List(ctx context.Context) ([]MemberDTO, error)
	Update(ctx context.Context, contactNumber string, input UpdateMemberInput) (*MemberDTO, error)
	Delete(ctx context.Context, contactNumber string) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a member service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateMemberInput) (*MemberDTO, error) {
	if _, err := s.repo.FindByContactNumber(ctx, input.ContactNumber); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "member already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check member")
	}

	member := &models.Member{
		ContactNumber:   input.ContactNumber,
		Name:            input.Name,
		Email:           input.Email,
		DateOfBirth:     input.DateOfBirth,
		EmergencyName:   input.EmergencyName,
		EmergencyNumber: input.EmergencyNumber,
		RewardPoints:    defaultRewardPoints,
	}
	if input.Balance != nil {
		member.Balance = *input.Balance
	}
	if input.RewardPoints != nil {
		member.RewardPoints = *input.RewardPoints
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create member")
	}
	return NewMemberDTO(member), nil
}

func (s *service) Get(ctx context.Context, contactNumber string) (*MemberDTO, error) {
	member, err := s.findMember(ctx, contactNumber)
	if err != nil {
		return nil, err
	}
	return NewMemberDTO(member), nil
}

func (s *service) List(ctx context.Context) ([]MemberDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list members")
	}
	return NewMemberDTOs(records), nil
}

func (s *service) Update(ctx context.Context, contactNumber string, input UpdateMemberInput) (*MemberDTO, error) {
	if _, err := s.findMember(ctx, contactNumber); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.DateOfBirth != nil {
		fields["date_of_birth"] = *input.DateOfBirth
	}
	if input.EmergencyName != nil {
		fields["emergency_name"] = *input.EmergencyName
	}
	if input.EmergencyNumber != nil {
		fields["emergency_number"] = *input.EmergencyNumber
	}
	if input.Balance != nil {
		fields["balance"] = *input.Balance
	}
	if input.RewardPoints != nil {
		fields["reward_points"] = *input.RewardPoints
	}
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, contactNumber, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update member")
	}

	member, err := s.findMember(ctx, contactNumber)
	if err != nil {
		return nil, err
	}
	return NewMemberDTO(member), nil
}

func (s *service) Delete(ctx context.Context, contactNumber string) error {
	if _, err := s.findMember(ctx, contactNumber); err != nil {
		return err
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).DeleteCascade(ctx, contactNumber)
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete member")
	}
	return nil
}

func (s *service) findMember(ctx context.Context, contactNumber string) (*models.Member, error) {
	member, err := s.repo.FindByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member")
	}
	return member, nil
}
