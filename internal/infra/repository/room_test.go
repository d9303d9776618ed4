//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	repositorymock "room-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.LockRoomForUpdateRow
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: spec returned",
			row:  sqlc.LockRoomForUpdateRow{ID: roomID, Capacity: 40, IsActive: true},
		},
		{
			name:       "error: room not found",
			returnErr:  pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			mockQueries.EXPECT().LockRoomForUpdate(ctx, mockDB, roomID).Return(tc.row, tc.returnErr)

			spec, err := repo.LockForUpdate(ctx, mockDB, roomID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, roomID, spec.ID)
			assert.Equal(t, 40, spec.Capacity)
			assert.True(t, spec.Active)
		})
	}
}

func TestRoomRepository_Delete(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: room deleted", affected: 1},
		{name: "error: room not found", affected: 0, expectKind: infra.KindNotFound},
		{
			name:       "error: reservations still reference the room",
			returnErr:  &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteRoom(ctx, mockDB, roomID).Return(tc.affected, tc.returnErr)

			err := repo.Delete(ctx, mockDB, roomID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
