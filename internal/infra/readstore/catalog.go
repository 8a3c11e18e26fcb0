package readstore

import (
	"context"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetTour(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Tours, error)
	GetHotel(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Hotels, error)
	ListRoomTypesByHotel(ctx context.Context, db sqlstore.DBTX, hotelID uuid.UUID) ([]sqlstore.RoomTypes, error)
	GetRoom(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Rooms, error)
	ListRoomsByRoomType(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListRoomsByRoomTypeParams) ([]sqlstore.Rooms, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlstore.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlstore.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) TourByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	row, err := r.queries.GetTour(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour", err)
	}

	tour, err := converter.TourFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert tour", err, infra.KindDBFailure)
	}
	return tour, nil
}

func (r *CatalogReadStore) HotelByID(ctx context.Context, id uuid.UUID) (*catalog.Hotel, error) {
	row, err := r.queries.GetHotel(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}

	roomTypes, err := r.queries.ListRoomTypesByHotel(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	hotel, err := converter.HotelFromRows(row, roomTypes)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert hotel", err, infra.KindDBFailure)
	}
	return hotel, nil
}

func (r *CatalogReadStore) RoomByID(ctx context.Context, id uuid.UUID) (*catalog.PhysicalRoom, error) {
	row, err := r.queries.GetRoom(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	room, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return room, nil
}

func (r *CatalogReadStore) RoomsByType(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*catalog.PhysicalRoom, error) {
	rows, err := r.queries.ListRoomsByRoomType(ctx, r.db, sqlstore.ListRoomsByRoomTypeParams{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	rooms, err := converter.RoomsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rooms", err, infra.KindDBFailure)
	}
	return rooms, nil
}
