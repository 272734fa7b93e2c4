package model

import (
	"dinoreserve/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldDinoType = "dino_type"
)

type Restaurant struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	DinoType string `db:"dino_type"`
	model.Metadata
}
