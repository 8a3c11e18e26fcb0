package repository

import (
	"context"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	LockRooms(ctx context.Context, db sqlstore.DBTX, ids []uuid.UUID) ([]sqlstore.Rooms, error)
	UpdateRoomState(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateRoomStateParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlstore.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlstore.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

// LockByIDs locks every listed room that exists. Missing ids are simply absent from the map.
func (r *RoomRepository) LockByIDs(ctx context.Context, tx sqlstore.DBTX, ids ...uuid.UUID) (map[uuid.UUID]*catalog.PhysicalRoom, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	locked := make(map[uuid.UUID]*catalog.PhysicalRoom, len(unique))
	if len(unique) == 0 {
		return locked, nil
	}

	rows, err := r.queries.LockRooms(ctx, tx, unique)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}

	for _, row := range rows {
		room, cerr := converter.RoomFromRow(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert room", cerr, infra.KindDBFailure)
		}
		locked[room.ID()] = room
	}

	return locked, nil
}

func (r *RoomRepository) UpdateState(ctx context.Context, tx sqlstore.DBTX, room *catalog.PhysicalRoom) error {
	affected, err := r.queries.UpdateRoomState(ctx, tx, converter.RoomToStateParams(room))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
