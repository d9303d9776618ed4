//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain text behind the hash every fixture user gets.
const DefaultPassword = "password123"

// bcrypt of DefaultPassword
const defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name := strings.Split(email, "@")[0]
	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT ((lower(email))) DO NOTHING`,
		userID, name, email, defaultPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO rooms (id, name, description, capacity, location, is_active)
		VALUES ($1, $2, '', $3, 'Gedung A', true)`,
		roomID, name, capacity)
	require.NoError(t, err)

	return roomID
}

func SetRoomActive(t *testing.T, db DBLike, roomID uuid.UUID, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE rooms SET is_active = $2 WHERE id = $1", roomID, active)
	require.NoError(t, err)
}

// CreateTestReservation inserts a row directly, bypassing the submission
// rules. A DITOLAK row gets a placeholder reason to satisfy the table check.
func CreateTestReservation(t *testing.T, db DBLike, userID, roomID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	var reason *string
	if status == "DITOLAK" {
		r := "fixture"
		reason = &r
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations
		(id, user_id, room_id, start_time, end_time, purpose, attendee_count, status, rejection_reason)
		VALUES ($1, $2, $3, $4, $5, 'Fixture', 5, $6, $7)`,
		id, userID, roomID, start, end, status, reason)
	require.NoError(t, err)

	return id
}

func CreateTestBlockedSlot(t *testing.T, db DBLike, roomID uuid.UUID, start, end time.Time, reason string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO blocked_slots (id, room_id, start_time, end_time, reason)
		VALUES ($1, $2, $3, $4, $5)`,
		id, roomID, start, end, reason)
	require.NoError(t, err)

	return id
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) (status string, reason *string, bySystem bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, rejection_reason, rejected_by_system FROM reservations WHERE id = $1", id).
		Scan(&status, &reason, &bySystem)
	require.NoError(t, err)
	return status, reason, bySystem
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
