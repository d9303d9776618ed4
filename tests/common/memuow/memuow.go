//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for command tests.
// Transactions are serialized by one mutex and rolled back by restoring a
// copy of the state taken at Begin.
package memuow

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type blockedRow struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Start     time.Time
	End       time.Time
	Reason    string
	CreatedAt time.Time
}

type state struct {
	rooms        map[uuid.UUID]shared.RoomSnapshot
	reservations map[uuid.UUID]shared.ReservationSnapshot
	blocked      map[uuid.UUID]blockedRow
	users        map[uuid.UUID]shared.UserSnapshot
}

func (s state) clone() state {
	return state{
		rooms:        maps.Clone(s.rooms),
		reservations: maps.Clone(s.reservations),
		blocked:      maps.Clone(s.blocked),
		users:        maps.Clone(s.users),
	}
}

type Store struct {
	mu  sync.Mutex
	st  state
	seq int

	// RejectPendingHook, when set, filters the ids a cascade actually rejects.
	RejectPendingHook func(ids []uuid.UUID) []uuid.UUID
	// ApprovedOverlappingHook, when set, filters what the approval guard sees,
	// standing in for a concurrent approval the read has not observed yet.
	ApprovedOverlappingHook func(slots []reservation.TimeSlot) []reservation.TimeSlot

	Commits   int
	Rollbacks int
}

func New() *Store {
	return &Store{st: state{
		rooms:        map[uuid.UUID]shared.RoomSnapshot{},
		reservations: map[uuid.UUID]shared.ReservationSnapshot{},
		blocked:      map[uuid.UUID]blockedRow{},
		users:        map[uuid.UUID]shared.UserSnapshot{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = saved
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// CommandReads outside a transaction take the lock per call.
func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, locking: true}
}

// nextTime keeps created_at strictly increasing.
func (s *Store) nextTime() time.Time {
	s.seq++
	return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

// Seeding and inspection helpers.

func (s *Store) AddRoom(attrs room.Attributes) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	now := s.nextTime()
	s.st.rooms[id] = shared.RoomSnapshot{
		ID: id, Name: attrs.Name, Description: attrs.Description, Capacity: attrs.Capacity,
		Location: attrs.Location, ImageURL: attrs.ImageURL, IsActive: attrs.IsActive,
		CreatedAt: now, UpdatedAt: now,
	}
	return id
}

// AddReservation stores r as is, keeping its id and status.
func (s *Store) AddReservation(r *reservation.Reservation) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := toSnapshot(r)
	snap.CreatedAt = s.nextTime()
	snap.UpdatedAt = snap.CreatedAt
	s.st.reservations[snap.ID] = snap
	return snap.ID
}

func (s *Store) AddBlockedSlot(roomID uuid.UUID, start, end time.Time, reason string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.st.blocked[id] = blockedRow{ID: id, RoomID: roomID, Start: start, End: end, Reason: reason, CreatedAt: s.nextTime()}
	return id
}

func (s *Store) AddUser(u shared.UserSnapshot) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.st.users[u.ID] = u
	return u.ID
}

func (s *Store) Reservation(id uuid.UUID) (shared.ReservationSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.reservations[id]
	return r, ok
}

func (s *Store) Room(id uuid.UUID) (shared.RoomSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.rooms[id]
	return r, ok
}

func (s *Store) BlockedSlotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.blocked)
}

func (s *Store) User(id uuid.UUID) (shared.UserSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

// ApprovedOverlapPairs counts pairs of approved reservations in one room whose
// slots overlap. It must always be zero.
func (s *Store) ApprovedOverlapPairs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var approved []shared.ReservationSnapshot
	for _, r := range s.st.reservations {
		if r.Status == reservation.StatusApproved.String() {
			approved = append(approved, r)
		}
	}
	n := 0
	for i := range approved {
		for j := i + 1; j < len(approved); j++ {
			if approved[i].RoomID == approved[j].RoomID && overlaps(approved[i].StartTime, approved[i].EndTime, approved[j].StartTime, approved[j].EndTime) {
				n++
			}
		}
	}
	return n
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type memTx struct {
	s *Store
}

func (t *memTx) Rooms() shared.RoomRepository               { return &roomRepo{s: t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{s: t.s} }
func (t *memTx) BlockedSlots() shared.BlockedSlotRepository { return &blockedRepo{s: t.s} }
func (t *memTx) Users() shared.UserRepository               { return &userRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type roomRepo struct{ s *Store }

func (r *roomRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (reservation.RoomSpec, error) {
	rm, ok := r.s.st.rooms[id]
	if !ok {
		return reservation.RoomSpec{}, notFound("room not found")
	}
	return reservation.RoomSpec{ID: rm.ID, Capacity: rm.Capacity, Active: rm.IsActive}, nil
}

func (r *roomRepo) nameTaken(name string, self uuid.UUID) bool {
	for _, rm := range r.s.st.rooms {
		if rm.Name == name && rm.ID != self {
			return true
		}
	}
	return false
}

func (r *roomRepo) Create(_ context.Context, _ sqlc.DBTX, rm *room.Room) (uuid.UUID, error) {
	if r.nameTaken(rm.Name(), uuid.Nil) {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", nil, infra.KindDuplicateKey)
	}
	now := r.s.nextTime()
	r.s.st.rooms[rm.ID()] = shared.RoomSnapshot{
		ID: rm.ID(), Name: rm.Name(), Description: rm.Description(), Capacity: rm.Capacity(),
		Location: rm.Location(), ImageURL: rm.ImageURL(), IsActive: rm.IsActive(),
		CreatedAt: now, UpdatedAt: now,
	}
	return rm.ID(), nil
}

func (r *roomRepo) Update(_ context.Context, _ sqlc.DBTX, rm *room.Room) error {
	cur, ok := r.s.st.rooms[rm.ID()]
	if !ok {
		return notFound("room not found")
	}
	if r.nameTaken(rm.Name(), rm.ID()) {
		return infra.WrapRepoErr("failed to update room", nil, infra.KindDuplicateKey)
	}
	cur.Name, cur.Description, cur.Capacity = rm.Name(), rm.Description(), rm.Capacity()
	cur.Location, cur.ImageURL, cur.IsActive = rm.Location(), rm.ImageURL(), rm.IsActive()
	cur.UpdatedAt = r.s.nextTime()
	r.s.st.rooms[rm.ID()] = cur
	return nil
}

func (r *roomRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.st.rooms[id]; !ok {
		return notFound("room not found")
	}
	for _, res := range r.s.st.reservations {
		if res.RoomID == id {
			return infra.WrapRepoErr("failed to delete room", nil, infra.KindForeignKeyViolated)
		}
	}
	for bid, b := range r.s.st.blocked {
		if b.RoomID == id {
			delete(r.s.st.blocked, bid)
		}
	}
	delete(r.s.st.rooms, id)
	return nil
}

type reservationRepo struct{ s *Store }

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if _, ok := r.s.st.rooms[res.RoomID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
	}
	snap := toSnapshot(res)
	snap.CreatedAt = r.s.nextTime()
	snap.UpdatedAt = snap.CreatedAt
	r.s.st.reservations[snap.ID] = snap
	return snap.ID, nil
}

func (r *reservationRepo) ChangeStatus(_ context.Context, _ sqlc.DBTX, change shared.StatusChange) (bool, error) {
	cur, ok := r.s.st.reservations[change.ID]
	if !ok {
		return false, nil
	}
	if !slices.Contains(change.From, reservation.Status(cur.Status)) {
		return false, nil
	}
	if change.StartsAfter != nil && !cur.StartTime.After(*change.StartsAfter) {
		return false, nil
	}
	if change.To == reservation.StatusApproved {
		for _, other := range r.s.st.reservations {
			if other.ID != cur.ID && other.RoomID == cur.RoomID &&
				other.Status == reservation.StatusApproved.String() &&
				overlaps(other.StartTime, other.EndTime, cur.StartTime, cur.EndTime) {
				return false, infra.WrapRepoErr("failed to change reservation status", nil, infra.KindConflict)
			}
		}
	}

	cur.Status = change.To.String()
	cur.RejectionReason = change.Reason
	cur.RejectedBySystem = change.RejectedBySystem
	cur.UpdatedAt = r.s.nextTime()
	r.s.st.reservations[cur.ID] = cur
	return true, nil
}

func (r *reservationRepo) matching(roomID uuid.UUID, slot reservation.TimeSlot, status reservation.Status, exclude *uuid.UUID) []shared.ReservationSnapshot {
	var out []shared.ReservationSnapshot
	for _, res := range r.s.st.reservations {
		if res.RoomID != roomID || res.Status != status.String() {
			continue
		}
		if exclude != nil && res.ID == *exclude {
			continue
		}
		if overlaps(res.StartTime, res.EndTime, slot.Start(), slot.End()) {
			out = append(out, res)
		}
	}
	slices.SortFunc(out, func(a, b shared.ReservationSnapshot) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

func (r *reservationRepo) ApprovedOverlapping(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) ([]reservation.TimeSlot, error) {
	var out []reservation.TimeSlot
	for _, res := range r.matching(roomID, slot, reservation.StatusApproved, excludeID) {
		ts, err := reservation.NewTimeSlot(res.StartTime, res.EndTime)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	if r.s.ApprovedOverlappingHook != nil {
		out = r.s.ApprovedOverlappingHook(out)
	}
	return out, nil
}

func (r *reservationRepo) PendingOverlappingForUpdate(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.matching(roomID, slot, reservation.StatusPending, &excludeID) {
		d, err := fromSnapshot(res)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *reservationRepo) CountPendingOverlapping(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) (int64, error) {
	return int64(len(r.matching(roomID, slot, reservation.StatusPending, &excludeID))), nil
}

func (r *reservationRepo) RejectPending(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID, reason string) ([]uuid.UUID, error) {
	if r.s.RejectPendingHook != nil {
		ids = r.s.RejectPendingHook(ids)
	}
	var out []uuid.UUID
	for _, id := range ids {
		cur, ok := r.s.st.reservations[id]
		if !ok || cur.Status != reservation.StatusPending.String() {
			continue
		}
		why := reason
		cur.Status = reservation.StatusRejected.String()
		cur.RejectionReason = &why
		cur.RejectedBySystem = true
		cur.UpdatedAt = r.s.nextTime()
		r.s.st.reservations[id] = cur
		out = append(out, id)
	}
	return out, nil
}

type blockedRepo struct{ s *Store }

func (r *blockedRepo) Create(_ context.Context, _ sqlc.DBTX, slot *blockedslot.BlockedSlot) (uuid.UUID, error) {
	if _, ok := r.s.st.rooms[slot.RoomID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create blocked slot", nil, infra.KindForeignKeyViolated)
	}
	r.s.st.blocked[slot.ID()] = blockedRow{
		ID: slot.ID(), RoomID: slot.RoomID(),
		Start: slot.TimeSlot().Start(), End: slot.TimeSlot().End(),
		Reason: slot.Reason(), CreatedAt: r.s.nextTime(),
	}
	return slot.ID(), nil
}

func (r *blockedRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	if _, ok := r.s.st.blocked[id]; !ok {
		return false, nil
	}
	delete(r.s.st.blocked, id)
	return true, nil
}

func (r *blockedRepo) Overlapping(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot) ([]reservation.TimeSlot, error) {
	var out []reservation.TimeSlot
	for _, b := range r.s.st.blocked {
		if b.RoomID != roomID || !overlaps(b.Start, b.End, slot.Start(), slot.End()) {
			continue
		}
		ts, err := reservation.NewTimeSlot(b.Start, b.End)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.s.st.users {
		if strings.EqualFold(existing.Email, u.Email().Value()) {
			return uuid.Nil, infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey)
		}
	}
	r.s.st.users[u.ID()] = shared.UserSnapshot{
		ID: u.ID(), Name: u.Name().Value(), Email: u.Email().Value(),
		PasswordHash: u.PasswordHash(), Role: u.Role().String(), IsActive: u.IsActive(),
	}
	return u.ID(), nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	if _, ok := r.s.st.users[userID]; !ok {
		return notFound("user not found")
	}
	return nil
}

type reads struct {
	s       *Store
	locking bool
}

func (r *reads) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	defer r.lock()()
	res, ok := r.s.st.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return &res, nil
}

func (r *reads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	defer r.lock()()
	rm, ok := r.s.st.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return &rm, nil
}

func (r *reads) RoomByName(_ context.Context, name string) (*shared.RoomSnapshot, error) {
	defer r.lock()()
	for _, rm := range r.s.st.rooms {
		if rm.Name == name {
			return &rm, nil
		}
	}
	return nil, notFound("room not found")
}

func (r *reads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	defer r.lock()()
	for _, u := range r.s.st.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	defer r.lock()()
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	u.PasswordHash = ""
	return &u, nil
}

func toSnapshot(r *reservation.Reservation) shared.ReservationSnapshot {
	var reason *string
	if rr := r.RejectionReason(); rr != nil {
		s := rr.String()
		reason = &s
	}
	return shared.ReservationSnapshot{
		ID:               r.ID(),
		UserID:           r.UserID(),
		RoomID:           r.RoomID(),
		StartTime:        r.TimeSlot().Start(),
		EndTime:          r.TimeSlot().End(),
		Purpose:          r.Purpose().String(),
		AttendeeCount:    r.Attendees().Int(),
		Status:           r.Status().String(),
		RejectionReason:  reason,
		RejectedBySystem: r.RejectedBySystem(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func fromSnapshot(s shared.ReservationSnapshot) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(s.StartTime, s.EndTime)
	if err != nil {
		return nil, err
	}
	purpose, err := reservation.NewPurpose(s.Purpose)
	if err != nil {
		return nil, err
	}
	attendees, err := reservation.NewAttendeeCount(s.AttendeeCount)
	if err != nil {
		return nil, err
	}
	var reason *reservation.RejectionReason
	if s.RejectionReason != nil {
		rr, rerr := reservation.NewRejectionReason(*s.RejectionReason)
		if rerr != nil {
			return nil, rerr
		}
		reason = &rr
	}
	return reservation.ReconstructReservation(
		s.ID, s.UserID, s.RoomID,
		slot, purpose, attendees, reservation.Status(s.Status),
		reason, s.RejectedBySystem,
		s.CreatedAt, s.UpdatedAt,
	), nil
}
