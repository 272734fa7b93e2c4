package model

import (
	"dinoreserve/shared/model"
)

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldTableNumber  = "table_number"
	FieldCapacity     = "capacity"
)

type Table struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	TableNumber  int    `db:"table_number"`
	Capacity     int    `db:"capacity"`
	model.Metadata
}
