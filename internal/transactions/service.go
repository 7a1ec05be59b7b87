package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/internal/catalog"
	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	"github.com/yuchialin/gymdesk-backend/pkg/enums"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

// Service exposes transaction accounting operations.
type Service interface {
	Create(ctx context.Context, input CreateTransactionInput) (*TransactionDTO, error)
	ListByMember(ctx context.Context, contactNumber string) ([]TransactionDTO, error)
	List(ctx context.Context) ([]TransactionDTO, error)
	Update(ctx context.Context, contactNumber string, id int64, input UpdateTransactionInput) (*TransactionDTO, error)
	Delete(ctx context.Context, contactNumber string, id int64) error
}

type memberLoader interface {
	FindByContactNumber(ctx context.Context, contactNumber string) (*models.Member, error)
}

type itemProber interface {
	FindItemKind(ctx context.Context, itemCode string) (catalog.ItemKind, int, error)
}

type service struct {
	repo        *Repository
	memberRepo  memberLoader
	catalogRepo itemProber
	now         func() time.Time
}

// NewService constructs a transaction service instance.
func NewService(repo *Repository, memberRepo memberLoader, catalogRepo itemProber) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("transaction repository required")
	}
	if memberRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, memberRepo: memberRepo, catalogRepo: catalogRepo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateTransactionInput) (*TransactionDTO, error) {
	if err := s.ensureMember(ctx, input.ContactNumber); err != nil {
		return nil, err
	}

	_, catalogPrice, err := s.catalogRepo.FindItemKind(ctx, input.ItemCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "probe item code")
	}

	unitPrice := catalogPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	discount := 1.0
	if input.Discount != nil {
		discount = *input.Discount
	}

	if err := validateAmounts(input.Count, unitPrice, discount); err != nil {
		return nil, err
	}
	if _, err := enums.ParsePaymentMethod(string(input.PaymentMethod)); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	record := &models.TransactionRecord{
		ContactNumber: input.ContactNumber,
		TransactedAt:  s.now().UTC(),
		ItemCode:      input.ItemCode,
		Count:         input.Count,
		UnitPrice:     unitPrice,
		Discount:      discount,
		TotalAmount:   computeTotal(input.Count, unitPrice, discount),
		PaymentMethod: input.PaymentMethod,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create transaction")
	}
	return NewTransactionDTO(record), nil
}

func (s *service) ListByMember(ctx context.Context, contactNumber string) ([]TransactionDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}
	records, err := s.repo.ListByContactNumber(ctx, contactNumber)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}
	return NewTransactionDTOs(records), nil
}

func (s *service) List(ctx context.Context) ([]TransactionDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}
	return NewTransactionDTOs(records), nil
}

func (s *service) Update(ctx context.Context, contactNumber string, id int64, input UpdateTransactionInput) (*TransactionDTO, error) {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return nil, err
	}

	record, err := s.findRecord(ctx, contactNumber, id)
	if err != nil {
		return nil, err
	}

	if input.Count == nil && input.UnitPrice == nil && input.Discount == nil && input.PaymentMethod == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	recompute := false
	if input.Count != nil {
		record.Count = *input.Count
		recompute = true
	}
	if input.UnitPrice != nil {
		record.UnitPrice = *input.UnitPrice
		recompute = true
	}
	if input.Discount != nil {
		record.Discount = *input.Discount
		recompute = true
	}
	if input.PaymentMethod != nil {
		if _, err := enums.ParsePaymentMethod(string(*input.PaymentMethod)); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
		}
		record.PaymentMethod = *input.PaymentMethod
	}

	if err := validateAmounts(record.Count, record.UnitPrice, record.Discount); err != nil {
		return nil, err
	}
	if recompute {
		record.TotalAmount = computeTotal(record.Count, record.UnitPrice, record.Discount)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update transaction")
	}
	return NewTransactionDTO(record), nil
}

func (s *service) Delete(ctx context.Context, contactNumber string, id int64) error {
	if err := s.ensureMember(ctx, contactNumber); err != nil {
		return err
	}
	if _, err := s.findRecord(ctx, contactNumber, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, contactNumber, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete transaction")
	}
	return nil
}

// computeTotal rounds half-up to a whole currency amount. Discount is a
// retention factor: 0.9 keeps ninety percent of the price.
func computeTotal(count, unitPrice int, discount float64) int {
	total := decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(int64(unitPrice))).
		Mul(decimal.NewFromFloat(discount)).
		Round(0)
	return int(total.IntPart())
}

func validateAmounts(count, unitPrice int, discount float64) error {
	if count <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "count must be positive")
	}
	if unitPrice <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must be positive")
	}
	if discount <= 0 || discount > 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount must be within (0, 1]")
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

func (s *service) findRecord(ctx context.Context, contactNumber string, id int64) (*models.TransactionRecord, error) {
	record, err := s.repo.FindByID(ctx, contactNumber, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "transaction record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load transaction")
	}
	return record, nil
}
