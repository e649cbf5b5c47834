package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func validParams() transaction.CreateParams {
	return transaction.CreateParams{
		Type:        transaction.TypeIncome,
		Category:    "salario",
		Description: "Paycheck",
		Amount:      100000,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)

	svc := ledger.NewService(store)

	got, err := svc.Add(context.Background(), validParams())
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, transaction.TypeIncome, got.Type)
	assert.Equal(t, int64(100000), got.Amount)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Len(t, svc.All(), 1)
}

func TestService_Add_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Save expectation: validation failures must not touch the store.
	store := ledger.NewMockStore(ctrl)
	svc := ledger.NewService(store)

	params := validParams()
	params.Amount = 0

	got, err := svc.Add(context.Background(), params)
	assert.ErrorIs(t, err, transaction.ErrValidation)
	assert.Nil(t, got)
	assert.Empty(t, svc.All())
}

func TestService_Add_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(50)

	svc := ledger.NewService(store)

	// Rapid successive adds land in the same clock millisecond; ids must
	// still be pairwise distinct.
	seen := make(map[int64]bool)

	for range 50 {
		tx, err := svc.Add(context.Background(), validParams())
		require.NoError(t, err)
		assert.False(t, seen[tx.ID], "duplicate id %d", tx.ID)
		seen[tx.ID] = true
	}
}

func TestService_Add_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := ledger.NewService(store)

	got, err := svc.Add(context.Background(), validParams())
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Empty(t, svc.All(), "failed persist must not leave the entry in memory")
}

func TestService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := ledger.NewService(store)

	tx, err := svc.Add(context.Background(), validParams())
	require.NoError(t, err)

	removed, err := svc.Remove(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.All())
}

func TestService_Remove_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Removing an unknown id is a no-op and must not persist anything.
	store := ledger.NewMockStore(ctrl)
	svc := ledger.NewService(store)

	removed, err := svc.Remove(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestService_Remove_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := ledger.NewService(store)

	tx, err := svc.Add(context.Background(), validParams())
	require.NoError(t, err)

	removed, err := svc.Remove(context.Background(), tx.ID)
	assert.Error(t, err)
	assert.False(t, removed)
	assert.Len(t, svc.All(), 1, "failed persist must keep the entry in memory")
}

func TestService_Load_SeedsIDGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A restored snapshot may carry ids from the future (clock skew).
	// New ids must still be unique.
	futureID := time.Now().Add(time.Hour).UnixMilli()
	restored := []transaction.Transaction{
		{ID: futureID, Type: transaction.TypeExpense, Category: "salud", Description: "x", Amount: 100, Date: time.Now()},
	}

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(restored, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := ledger.NewService(store)
	require.NoError(t, svc.Load(context.Background()))
	assert.Len(t, svc.All(), 1)

	tx, err := svc.Add(context.Background(), validParams())
	require.NoError(t, err)
	assert.Greater(t, tx.ID, futureID)
}

func TestService_Load_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := ledger.NewService(store)
	assert.Error(t, svc.Load(context.Background()))
}

func TestService_All_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ledger.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := ledger.NewService(store)

	_, err := svc.Add(context.Background(), validParams())
	require.NoError(t, err)

	all := svc.All()
	all[0].Description = "mutated"
	assert.Equal(t, "Paycheck", svc.All()[0].Description)
}
