package converter

import (
	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		Name:        r.Name(),
		Description: pgconv.OptionalText(r.Description()),
		Capacity:    toInt32(r.Capacity()),
		Location:    r.Location(),
		ImageUrl:    pgconv.OptionalText(r.ImageURL()),
		IsActive:    r.IsActive(),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: pgconv.OptionalText(r.Description()),
		Capacity:    toInt32(r.Capacity()),
		Location:    r.Location(),
		ImageUrl:    pgconv.OptionalText(r.ImageURL()),
		IsActive:    r.IsActive(),
	}
}

func BlockedSlotToCreateParams(b *blockedslot.BlockedSlot) sqlc.CreateBlockedSlotParams {
	return sqlc.CreateBlockedSlotParams{
		RoomID:    b.RoomID(),
		StartTime: pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(b.TimeSlot().End()),
		Reason:    b.Reason(),
	}
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}
