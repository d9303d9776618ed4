//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/tests/common/builder"
	repositorymock "room-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlockedSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBlockedSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBlockedSlotRepository(mockQueries, mockDB)

	slot, err := builder.NewBlockedSlotBuilder().BuildDomain()
	require.NoError(t, err)

	newID := uuid.New()
	mockQueries.EXPECT().
		CreateBlockedSlot(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBlockedSlotParams) (sqlc.BlockedSlots, error) {
			assert.Equal(t, slot.RoomID(), arg.RoomID)
			assert.Equal(t, slot.Reason(), arg.Reason)
			assert.True(t, arg.StartTime.Time.Equal(slot.TimeSlot().Start()))
			return sqlc.BlockedSlots{ID: newID, RoomID: arg.RoomID}, nil
		})

	id, err := repo.Create(ctx, mockDB, slot)
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestBlockedSlotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	testCases := []struct {
		name        string
		affected    int64
		returnErr   error
		wantDeleted bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: deleted", affected: 1, wantDeleted: true},
		{name: "unknown id reports false", affected: 0, wantDeleted: false},
		{name: "error: database failure", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBlockedSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBlockedSlotRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteBlockedSlot(ctx, mockDB, slotID).Return(tc.affected, tc.returnErr)

			deleted, err := repo.Delete(ctx, mockDB, slotID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDeleted, deleted)
		})
	}
}
