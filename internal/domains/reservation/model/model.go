package model

import (
	"time"

	"dinoreserve/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldTableID         = "table_id"
	FieldRestaurantID    = "restaurant_id"
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldPartySize       = "party_size"
	FieldReservationTime = "reservation_time"
	FieldStatus          = "status"

	StatusReserved  = "reserved"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID              string    `db:"id"`
	TableID         string    `db:"table_id"`
	RestaurantID    string    `db:"restaurant_id" table:"tables"`
	TableNumber     int       `db:"table_number"  table:"tables"`
	CustomerName    string    `db:"customer_name"`
	CustomerPhone   string    `db:"customer_phone"`
	PartySize       int       `db:"party_size"`
	ReservationTime time.Time `db:"reservation_time"`
	Status          string    `db:"status"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN tables ON tables.id = reservations.table_id"
}
