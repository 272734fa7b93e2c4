package dto

import (
	reservationModel "dinoreserve/internal/domains/reservation/model"
	"dinoreserve/internal/domains/table/model"
	"dinoreserve/shared/constant"
	gDto "dinoreserve/shared/dto"
	"dinoreserve/shared/timezone"
)

type CurrentReservation struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	PartySize       int    `json:"party_size"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
}

func (r *CurrentReservation) FromModel(model reservationModel.Reservation) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.PartySize = model.PartySize
	r.ReservationTime = timezone.Format(model.ReservationTime, constant.DateFormat)
	r.Status = model.Status
}

type TableResponse struct {
	ID                 string              `json:"id"`
	RestaurantID       string              `json:"restaurant_id"`
	TableNumber        int                 `json:"table_number"`
	Capacity           int                 `json:"capacity"`
	IsReserved         bool                `json:"is_reserved"`
	CurrentReservation *CurrentReservation `json:"current_reservation"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(model model.Table) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.TableNumber = model.TableNumber
	r.Capacity = model.Capacity
	r.Metadata.FromModel(model.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalData int             `json:"total_data"`
}

// FromModels pairs each table with its active reservation, if any. When a
// table somehow carries more than one active reservation the most recently
// created one wins.
func (r *GetTablesResponse) FromModels(models []model.Table, active []reservationModel.Reservation) {
	current := make(map[string]reservationModel.Reservation, len(active))

	for _, res := range active {
		held, ok := current[res.TableID]
		if !ok || res.CreatedAt.After(held.CreatedAt) {
			current[res.TableID] = res
		}
	}

	r.TotalData = len(models)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)

		if res, ok := current[mod.ID]; ok {
			reservation := &CurrentReservation{}
			reservation.FromModel(res)

			r.Tables[i].IsReserved = true
			r.Tables[i].CurrentReservation = reservation
		}
	}
}
