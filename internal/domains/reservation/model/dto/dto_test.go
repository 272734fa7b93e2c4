package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dinoreserve/internal/domains/reservation/model"
	"dinoreserve/internal/domains/reservation/model/dto"
	"dinoreserve/shared/constant"
	gModel "dinoreserve/shared/model"
	"dinoreserve/shared/timezone"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		TableID:         "550e8400-e29b-41d4-a716-446655440000",
		CustomerName:    "Rex Arms",
		CustomerPhone:   "+15550001111",
		PartySize:       2,
		ReservationTime: "2026-09-01T19:00:00Z",
	}

	userID := "test-user-id"
	reservation, err := req.ToModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.TableID, reservation.TableID)
	assert.Equal(t, req.CustomerName, reservation.CustomerName)
	assert.Equal(t, req.CustomerPhone, reservation.CustomerPhone)
	assert.Equal(t, req.PartySize, reservation.PartySize)
	assert.Equal(t, model.StatusReserved, reservation.Status)
	assert.Equal(t, userID, reservation.CreatedBy)
	assert.Equal(t, userID, reservation.ModifiedBy)
	assert.False(t, reservation.ReservationTime.IsZero(), "expected ReservationTime to be parsed")
	assert.False(t, reservation.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateReservationRequest_ToModelInvalidTime(t *testing.T) {
	req := dto.CreateReservationRequest{
		TableID:         "550e8400-e29b-41d4-a716-446655440000",
		CustomerName:    "Rex Arms",
		CustomerPhone:   "+15550001111",
		PartySize:       2,
		ReservationTime: "next friday at eight",
	}

	_, err := req.ToModel("test-user-id")

	assert.Error(t, err)
}

func TestUpdateReservationRequest_ToUpdatedFields(t *testing.T) {
	req := dto.UpdateReservationRequest{
		CustomerName:    "Tricera Tops",
		PartySize:       3,
		ReservationTime: "2026-09-02T20:00:00Z",
	}

	fields, err := req.ToUpdatedFields("test-user-id")

	assert.NoError(t, err)
	assert.Equal(t, "Tricera Tops", fields["customer_name"])
	assert.Equal(t, 3, fields["party_size"])
	assert.Contains(t, fields, "reservation_time")
	assert.NotContains(t, fields, "customer_phone", "zero fields must not be updated")
	assert.Equal(t, "test-user-id", fields[constant.FieldModifiedBy])
}

func TestUpdateReservationRequest_ToUpdatedFieldsInvalidTime(t *testing.T) {
	req := dto.UpdateReservationRequest{
		ReservationTime: "never",
	}

	_, err := req.ToUpdatedFields("test-user-id")

	assert.Error(t, err)
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	reservation := model.Reservation{
		ID:              "test-id",
		TableID:         "table-id",
		RestaurantID:    "restaurant-id",
		TableNumber:     7,
		CustomerName:    "Rex Arms",
		CustomerPhone:   "+15550001111",
		PartySize:       2,
		ReservationTime: time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
		Status:          model.StatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.ReservationResponse
	response.FromModel(reservation)

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, reservation.TableID, response.TableID)
	assert.Equal(t, reservation.RestaurantID, response.RestaurantID)
	assert.Equal(t, reservation.TableNumber, response.TableNumber)
	assert.Equal(t, reservation.CustomerName, response.CustomerName)
	assert.Equal(t, reservation.PartySize, response.PartySize)
	assert.Equal(t, reservation.Status, response.Status)
	assert.Equal(t, timezone.Format(reservation.ReservationTime, constant.DateFormat), response.ReservationTime)
	assert.Equal(t, reservation.CreatedBy, response.CreatedBy)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	reservations := []model.Reservation{
		{
			ID:              "test-id-1",
			TableID:         "table-1",
			CustomerName:    "Rex Arms",
			PartySize:       2,
			ReservationTime: now,
			Status:          model.StatusReserved,
			Metadata:        gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
		{
			ID:              "test-id-2",
			TableID:         "table-2",
			CustomerName:    "Tricera Tops",
			PartySize:       4,
			ReservationTime: now,
			Status:          model.StatusCancelled,
			Metadata:        gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
	}

	var response dto.GetReservationsResponse
	response.FromModels(reservations, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, "test-id-1", response.Reservations[0].ID)
	assert.Equal(t, "test-id-2", response.Reservations[1].ID)
}

func TestReservationEvent_FromModel(t *testing.T) {
	reservation := model.Reservation{
		ID:              "test-id",
		TableID:         "table-id",
		CustomerName:    "Rex Arms",
		PartySize:       2,
		ReservationTime: time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
		Status:          model.StatusReserved,
	}

	var event dto.ReservationEvent
	event.FromModel("reservation.created", reservation)

	assert.Equal(t, "reservation.created", event.EventType)
	assert.Equal(t, reservation.ID, event.ReservationID)
	assert.Equal(t, reservation.TableID, event.TableID)
	assert.Equal(t, reservation.PartySize, event.PartySize)
	assert.Equal(t, reservation.Status, event.Status)
	assert.NotEmpty(t, event.OccurredAt)
}
