package models

import "fmt"

// Location is a room or area where samples and equipment live.
type Location struct {
	ID           int     `json:"id"`
	LocationType *string `json:"location_type"`
	RoomNumber   int     `json:"room_number"`
}

// Label is the human readable name used in dropdowns.
func (l Location) Label() string {
	if l.LocationType == nil || *l.LocationType == "" {
		return fmt.Sprintf("Room %d", l.RoomNumber)
	}
	return fmt.Sprintf("%s %d", *l.LocationType, l.RoomNumber)
}

// Warehouse is a storage facility run under an SOP.
type Warehouse struct {
	ID                  int    `json:"id"`
	SOPID               int    `json:"sop"`
	WarehouseTechnician string `json:"warehouse_technician"`
	WarehouseFacility   string `json:"warehouse_facility"`
	WarehouseCompany    string `json:"warehouse_company"`
}
