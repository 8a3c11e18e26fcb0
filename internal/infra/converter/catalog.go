package converter

import (
	"fmt"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"
)

func TourFromRow(row sqlstore.Tours) (*catalog.Tour, error) {
	discount, err := pgconv.Float64FromNumeric(row.Discount)
	if err != nil {
		return nil, fmt.Errorf("tour %s: discount: %w", row.ID, err)
	}
	rate, err := pgconv.Float64FromNumeric(row.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("tour %s: commission rate: %w", row.ID, err)
	}
	return catalog.NewTour(row.ID, row.Title, int(row.MaxPeople), row.AmountCents, discount, rate)
}

func HotelFromRows(row sqlstore.Hotels, roomTypes []sqlstore.RoomTypes) (*catalog.Hotel, error) {
	rate, err := pgconv.Float64FromNumeric(row.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("hotel %s: commission rate: %w", row.ID, err)
	}
	types := make([]catalog.RoomType, 0, len(roomTypes))
	for _, rt := range roomTypes {
		types = append(types, catalog.RoomType{
			ID:         rt.ID,
			HotelID:    rt.HotelID,
			Name:       rt.Name,
			PriceCents: rt.PriceCents,
			Features:   rt.Features,
		})
	}
	return catalog.NewHotel(row.ID, row.Name, rate, types)
}

func RoomFromRow(row sqlstore.Rooms) (*catalog.PhysicalRoom, error) {
	status, err := catalog.ParseRoomStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", row.ID, err)
	}
	return catalog.ReconstructPhysicalRoom(
		row.ID,
		row.HotelID,
		row.RoomTypeID,
		row.Number,
		status,
		pgconv.UUIDPtrFromPgtype(row.CurrentBookingID),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomsFromRows(rows []sqlstore.Rooms) ([]*catalog.PhysicalRoom, error) {
	out := make([]*catalog.PhysicalRoom, 0, len(rows))
	for _, row := range rows {
		r, err := RoomFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func RoomToStateParams(room *catalog.PhysicalRoom) sqlstore.UpdateRoomStateParams {
	return sqlstore.UpdateRoomStateParams{
		ID:               room.ID(),
		Status:           room.Status().String(),
		CurrentBookingID: pgconv.UUIDPtrToPgtype(room.CurrentBookingID()),
		UpdatedAt:        pgconv.TimeToPgtype(room.UpdatedAt()),
	}
}
