package models

import "github.com/shopspring/decimal"

// Equipment is a laboratory instrument with a usable measurement range.
type Equipment struct {
	ID            int             `json:"id"`
	LocationID    int             `json:"location"`
	SOPID         int             `json:"sop"`
	EquipmentName string          `json:"equipment_name"`
	MinUseRange   decimal.Decimal `json:"min_use_range"`
	MaxUseRange   decimal.Decimal `json:"max_use_range"`
	InUse         bool            `json:"in_use"`
}

// MaintenanceLog records one service of a piece of equipment.
type MaintenanceLog struct {
	ID                 int    `json:"id"`
	EquipmentID        int    `json:"equipment"`
	SOPID              int    `json:"sop"`
	ServiceDate        Date   `json:"service_date"`
	ServiceDescription string `json:"service_description"`
	ServiceInterval    string `json:"service_interval"`
	NextServiceDate    Date   `json:"next_service_date"`
}

// TestEquipmentLink records that a test is run on a piece of equipment.
type TestEquipmentLink struct {
	ID          int `json:"id"`
	TestID      int `json:"test"`
	EquipmentID int `json:"equipment"`
}
