package dto

import (
	"time"

	"dinoreserve/internal/domains/reservation/model"
	"dinoreserve/shared"
	"dinoreserve/shared/constant"
	gDto "dinoreserve/shared/dto"
	gModel "dinoreserve/shared/model"
	"dinoreserve/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TableID         string `json:"table_id"         validate:"required,uuid4"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"required,max=20"`
	PartySize       int    `json:"party_size"       validate:"required,min=1"`
	ReservationTime string `json:"reservation_time" validate:"required,rfc3339"`
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	reservationTime, err := timezone.Parse(constant.DateFormat, c.ReservationTime)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		TableID:         c.TableID,
		CustomerName:    c.CustomerName,
		CustomerPhone:   c.CustomerPhone,
		PartySize:       c.PartySize,
		ReservationTime: reservationTime,
		Status:          model.StatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationRequest struct {
	CustomerName    string `db:"customer_name"    json:"customer_name"    validate:"omitempty,max=100"`
	CustomerPhone   string `db:"customer_phone"   json:"customer_phone"   validate:"omitempty,max=20"`
	PartySize       int    `db:"party_size"       json:"party_size"       validate:"omitempty,min=1"`
	ReservationTime string `json:"reservation_time" validate:"omitempty,rfc3339"`
}

// updateFields carries the parsed reservation time so TransformFields picks
// it up under its db tag.
type updateFields struct {
	CustomerName    string    `db:"customer_name"`
	CustomerPhone   string    `db:"customer_phone"`
	PartySize       int       `db:"party_size"`
	ReservationTime time.Time `db:"reservation_time"`
}

func (u *UpdateReservationRequest) ToUpdatedFields(user string) (map[string]any, error) {
	fields := updateFields{
		CustomerName:  u.CustomerName,
		CustomerPhone: u.CustomerPhone,
		PartySize:     u.PartySize,
	}

	if u.ReservationTime != "" {
		reservationTime, err := timezone.Parse(constant.DateFormat, u.ReservationTime)
		if err != nil {
			return nil, err
		}

		fields.ReservationTime = reservationTime
	}

	return shared.TransformFields(fields, user), nil
}

// CancelReservationFields feeds TransformFields when a reservation is
// cancelled.
type CancelReservationFields struct {
	Status string `db:"status"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	TableID         string `json:"table_id"`
	RestaurantID    string `json:"restaurant_id"`
	TableNumber     int    `json:"table_number"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	PartySize       int    `json:"party_size"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.TableID = model.TableID
	r.RestaurantID = model.RestaurantID
	r.TableNumber = model.TableNumber
	r.CustomerName = model.CustomerName
	r.CustomerPhone = model.CustomerPhone
	r.PartySize = model.PartySize
	r.ReservationTime = timezone.Format(model.ReservationTime, constant.DateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type ReservationEvent struct {
	EventType       string `json:"event_type"`
	ReservationID   string `json:"reservation_id"`
	TableID         string `json:"table_id"`
	CustomerName    string `json:"customer_name"`
	PartySize       int    `json:"party_size"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	OccurredAt      string `json:"occurred_at"`
}

func (e *ReservationEvent) FromModel(eventType string, model model.Reservation) {
	e.EventType = eventType
	e.ReservationID = model.ID
	e.TableID = model.TableID
	e.CustomerName = model.CustomerName
	e.PartySize = model.PartySize
	e.ReservationTime = timezone.Format(model.ReservationTime, constant.DateFormat)
	e.Status = model.Status
	e.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
}
