package client

import (
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Input types are the creation payloads; the server assigns ids.

type UserInput struct {
	AccountUsername   string `json:"account_username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Department        string `json:"department"`
	TrainingCompleted bool   `json:"training_completed"`
	IsAnalyst         bool   `json:"is_analyst"`
	IsAdministrator   bool   `json:"is_administrator"`
}

type SOPInput struct {
	SOPName       string           `json:"sop_name"`
	VersionNumber *decimal.Decimal `json:"version_number,omitempty"`
	EffectiveDate models.Date      `json:"effective_date"`
}

type LocationInput struct {
	LocationType *string `json:"location_type"`
	RoomNumber   int     `json:"room_number"`
}

type WarehouseInput struct {
	SOP                 int    `json:"sop"`
	WarehouseTechnician string `json:"warehouse_technician"`
	WarehouseFacility   string `json:"warehouse_facility"`
	WarehouseCompany    string `json:"warehouse_company"`
}

type EquipmentInput struct {
	Location      int             `json:"location"`
	SOP           int             `json:"sop"`
	EquipmentName string          `json:"equipment_name"`
	MinUseRange   decimal.Decimal `json:"min_use_range"`
	MaxUseRange   decimal.Decimal `json:"max_use_range"`
	InUse         bool            `json:"in_use"`
}

type SampleInput struct {
	Location          int               `json:"location"`
	Warehouse         int               `json:"warehouse"`
	SOP               int               `json:"sop"`
	ProductName       string            `json:"product_name"`
	ProductStage      string            `json:"product_stage"`
	Quantity          int               `json:"quantity"`
	TimeReceived      *time.Time        `json:"time_received,omitempty"`
	SampleType        models.SampleType `json:"sample_type"`
	StorageConditions string            `json:"storage_conditions"`
}

type TestInput struct {
	UserAccount         int                 `json:"user_account"`
	SOP                 int                 `json:"sop"`
	MinAcceptableResult decimal.NullDecimal `json:"min_acceptable_result"`
	MaxAcceptableResult decimal.NullDecimal `json:"max_acceptable_result"`
}

type ResultInput struct {
	Sample           int             `json:"sample"`
	Test             int             `json:"test"`
	TestingAnalyst   string          `json:"testing_analyst"`
	ReviewingAnalyst string          `json:"reviewing_analyst"`
	TestResult       decimal.Decimal `json:"test_result"`
	Deadline         time.Time       `json:"deadline"`
	PassOrFail       bool            `json:"pass_or_fail"`
}

type MaintenanceLogInput struct {
	Equipment          int         `json:"equipment"`
	SOP                int         `json:"sop"`
	ServiceDate        models.Date `json:"service_date"`
	ServiceDescription string      `json:"service_description"`
	ServiceInterval    string      `json:"service_interval"`
	NextServiceDate    models.Date `json:"next_service_date"`
}

type ReagentInput struct {
	SOP               int         `json:"sop"`
	ReagentName       string      `json:"reagent_name"`
	CASNumber         string      `json:"cas_number"`
	LotNumber         string      `json:"lot_number"`
	Vendor            string      `json:"vendor"`
	ManufacturingDate models.Date `json:"manufacturing_date"`
	ExpirationDate    models.Date `json:"expiration_date"`
}

type TestReagentLinkInput struct {
	Test       int             `json:"test"`
	Reagent    int             `json:"reagent"`
	VolumeUsed decimal.Decimal `json:"volume_used"`
}

type TestEquipmentLinkInput struct {
	Test      int `json:"test"`
	Equipment int `json:"equipment"`
}
