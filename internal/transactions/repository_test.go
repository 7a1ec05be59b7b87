package transactions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	"github.com/yuchialin/gymdesk-backend/pkg/enums"
)

func seedRecord(t *testing.T, repo *Repository, contactNumber, itemCode string, total int) *models.TransactionRecord {
	t.Helper()
	record := &models.TransactionRecord{
		ContactNumber: contactNumber,
		TransactedAt:  time.Now().UTC(),
		ItemCode:      itemCode,
		Count:         1,
		UnitPrice:     total,
		Discount:      1.0,
		TotalAmount:   total,
		PaymentMethod: enums.PaymentMethodCash,
	}
	require.NoError(t, repo.Create(context.Background(), record))
	return record
}

func TestRepositoryScopesByContactNumber(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	mine := seedRecord(t, repo, "0911111111", "PROTEIN01", 80)
	seedRecord(t, repo, "0922222222", "PROTEIN01", 80)

	found, err := repo.FindByID(ctx, "0911111111", mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, found.ID)

	_, err = repo.FindByID(ctx, "0922222222", mine.ID)
	assert.Error(t, err, "another member's scope must not see the record")

	list, err := repo.ListByContactNumber(ctx, "0911111111")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	first := seedRecord(t, repo, "0911111111", "PROTEIN01", 80)
	second := seedRecord(t, repo, "0911111111", "PLAN_GOLD", 1500)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRepositoryDeleteIsScoped(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	record := seedRecord(t, repo, "0911111111", "PROTEIN01", 80)

	require.NoError(t, repo.Delete(ctx, "0922222222", record.ID))
	_, err := repo.FindByID(ctx, "0911111111", record.ID)
	assert.NoError(t, err, "delete under the wrong member must be a no-op")

	require.NoError(t, repo.Delete(ctx, "0911111111", record.ID))
	_, err = repo.FindByID(ctx, "0911111111", record.ID)
	assert.Error(t, err)
}
