package handlers

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
	"github.com/shopspring/decimal"
)

type UserAccountRequest struct {
	AccountUsername   string `json:"account_username" validate:"required,max=64" example:"jdoe"`
	FirstName         string `json:"first_name" validate:"max=64" example:"Jane"`
	LastName          string `json:"last_name" validate:"max=64" example:"Doe"`
	Phone             string `json:"phone" validate:"max=16" example:"555-0100"`
	Email             string `json:"email" validate:"required,email,max=255" example:"jdoe@example.com"`
	Department        string `json:"department" validate:"max=255" example:"QC"`
	TrainingCompleted bool   `json:"training_completed"`
	IsAnalyst         bool   `json:"is_analyst"`
	IsAdministrator   bool   `json:"is_administrator"`
}

func (r UserAccountRequest) toModel() models.UserAccount {
	return models.UserAccount{
		AccountUsername:   strings.TrimSpace(r.AccountUsername),
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		Email:             strings.TrimSpace(r.Email),
		Department:        r.Department,
		TrainingCompleted: r.TrainingCompleted,
		IsAnalyst:         r.IsAnalyst,
		IsAdministrator:   r.IsAdministrator,
	}
}

var (
	defaultSOPVersion = decimal.RequireFromString("1.0")
	maxSOPVersion     = decimal.RequireFromString("99.9")
	// NUMERIC(16, 6) leaves ten integer digits and six decimal places
	maxMeasurement   = decimal.New(1, 10)
	measurementScale = int32(6)
)

type SOPRequest struct {
	SOPName       string           `json:"sop_name" validate:"required,max=16" example:"SOP-001"`
	VersionNumber *decimal.Decimal `json:"version_number" swaggertype:"number" example:"1.0"`
	EffectiveDate *models.Date     `json:"effective_date" validate:"required" swaggertype:"string" example:"2024-01-31"`
}

func (r SOPRequest) crossCheck() []ValidationError {
	if r.VersionNumber == nil {
		return nil
	}
	v := *r.VersionNumber
	if v.IsNegative() || v.GreaterThan(maxSOPVersion) || !v.Equal(v.Round(1)) {
		return []ValidationError{{Field: "version_number", Description: "version_number must be between 0 and 99.9 with one decimal place"}}
	}
	return nil
}

func (r SOPRequest) toModel() models.SOP {
	version := defaultSOPVersion
	if r.VersionNumber != nil {
		version = *r.VersionNumber
	}
	return models.SOP{
		SOPName:       strings.TrimSpace(r.SOPName),
		VersionNumber: version,
		EffectiveDate: *r.EffectiveDate,
	}
}

type LocationRequest struct {
	LocationType *string `json:"location_type" validate:"omitempty,max=64" example:"Lab"`
	RoomNumber   int     `json:"room_number" validate:"required,gt=0" example:"101"`
}

func (r LocationRequest) toModel() models.Location {
	loc := models.Location{RoomNumber: r.RoomNumber}
	if r.LocationType != nil && strings.TrimSpace(*r.LocationType) != "" {
		t := strings.TrimSpace(*r.LocationType)
		loc.LocationType = &t
	}
	return loc
}

type WarehouseRequest struct {
	SOP                 int    `json:"sop" validate:"required,gt=0" example:"1"`
	WarehouseTechnician string `json:"warehouse_technician" validate:"max=64" example:"Sam"`
	WarehouseFacility   string `json:"warehouse_facility" validate:"required,max=64" example:"North"`
	WarehouseCompany    string `json:"warehouse_company" validate:"max=64" example:"Acme"`
}

func (r WarehouseRequest) toModel() models.Warehouse {
	return models.Warehouse{
		SOPID:               r.SOP,
		WarehouseTechnician: r.WarehouseTechnician,
		WarehouseFacility:   strings.TrimSpace(r.WarehouseFacility),
		WarehouseCompany:    strings.TrimSpace(r.WarehouseCompany),
	}
}

type EquipmentRequest struct {
	Location      int              `json:"location" validate:"required,gt=0" example:"1"`
	SOP           int              `json:"sop" validate:"required,gt=0" example:"1"`
	EquipmentName string           `json:"equipment_name" validate:"required,max=64" example:"pH meter"`
	MinUseRange   *decimal.Decimal `json:"min_use_range" validate:"required" swaggertype:"number" example:"0"`
	MaxUseRange   *decimal.Decimal `json:"max_use_range" validate:"required" swaggertype:"number" example:"14"`
	InUse         bool             `json:"in_use"`
}

func (r EquipmentRequest) crossCheck() []ValidationError {
	var errs []ValidationError
	errs = append(errs, checkMeasurement("min_use_range", r.MinUseRange)...)
	errs = append(errs, checkMeasurement("max_use_range", r.MaxUseRange)...)
	if r.MaxUseRange.LessThan(*r.MinUseRange) {
		errs = append(errs, ValidationError{Field: "max_use_range", Description: "max_use_range cannot be less than min_use_range"})
	}
	return errs
}

func (r EquipmentRequest) toModel() models.Equipment {
	return models.Equipment{
		LocationID:    r.Location,
		SOPID:         r.SOP,
		EquipmentName: strings.TrimSpace(r.EquipmentName),
		MinUseRange:   *r.MinUseRange,
		MaxUseRange:   *r.MaxUseRange,
		InUse:         r.InUse,
	}
}

type SampleRequest struct {
	Location          int        `json:"location" validate:"required,gt=0" example:"1"`
	Warehouse         int        `json:"warehouse" validate:"required,gt=0" example:"1"`
	SOP               int        `json:"sop" validate:"required,gt=0" example:"1"`
	ProductName       string     `json:"product_name" validate:"required,max=64" example:"Aspirin"`
	ProductStage      string     `json:"product_stage" validate:"required,max=64" example:"Granulation"`
	Quantity          *int       `json:"quantity" validate:"required,gte=0,lte=9999" example:"10"`
	TimeReceived      *time.Time `json:"time_received" example:"2024-01-31T09:00:00Z"`
	SampleType        string     `json:"sample_type" validate:"required,oneof=I S F" example:"I"`
	StorageConditions string     `json:"storage_conditions" validate:"required,max=5" example:"RT"`
}

func (r SampleRequest) toModel(received time.Time) models.Sample {
	if r.TimeReceived != nil {
		received = *r.TimeReceived
	}
	return models.Sample{
		LocationID:        r.Location,
		WarehouseID:       r.Warehouse,
		SOPID:             r.SOP,
		ProductName:       strings.TrimSpace(r.ProductName),
		ProductStage:      strings.TrimSpace(r.ProductStage),
		Quantity:          *r.Quantity,
		TimeReceived:      received.UTC(),
		SampleType:        models.SampleType(r.SampleType),
		StorageConditions: r.StorageConditions,
	}
}

func (r SampleRequest) references() []reference {
	return []reference{locationRef(r.Location), warehouseRef(r.Warehouse), sopRef(r.SOP)}
}

type TestRequest struct {
	UserAccount         int              `json:"user_account" validate:"required,gt=0" example:"1"`
	SOP                 int              `json:"sop" validate:"required,gt=0" example:"1"`
	MinAcceptableResult *decimal.Decimal `json:"min_acceptable_result" swaggertype:"number" example:"10"`
	MaxAcceptableResult *decimal.Decimal `json:"max_acceptable_result" swaggertype:"number" example:"20"`
}

func (r TestRequest) crossCheck() []ValidationError {
	var errs []ValidationError
	errs = append(errs, checkMeasurement("min_acceptable_result", r.MinAcceptableResult)...)
	errs = append(errs, checkMeasurement("max_acceptable_result", r.MaxAcceptableResult)...)
	if r.MinAcceptableResult != nil && r.MaxAcceptableResult != nil && r.MaxAcceptableResult.LessThan(*r.MinAcceptableResult) {
		errs = append(errs, ValidationError{Field: "max_acceptable_result", Description: "max_acceptable_result cannot be less than min_acceptable_result"})
	}
	return errs
}

func (r TestRequest) toModel() models.Test {
	return models.Test{
		UserAccountID:       r.UserAccount,
		SOPID:               r.SOP,
		MinAcceptableResult: models.NullDecimalFrom(r.MinAcceptableResult),
		MaxAcceptableResult: models.NullDecimalFrom(r.MaxAcceptableResult),
	}
}

type ResultRequest struct {
	Sample           int              `json:"sample" validate:"required,gt=0" example:"1"`
	Test             int              `json:"test" validate:"required,gt=0" example:"1"`
	TestingAnalyst   string           `json:"testing_analyst" validate:"required,max=64" example:"jdoe"`
	ReviewingAnalyst string           `json:"reviewing_analyst" validate:"required,max=64" example:"asmith"`
	TestResult       *decimal.Decimal `json:"test_result" validate:"required" swaggertype:"number" example:"15"`
	Deadline         *time.Time       `json:"deadline" validate:"required" example:"2024-02-01T17:00:00Z"`
	// PassOrFail is accepted for compatibility; the stored verdict is always recomputed.
	PassOrFail *bool `json:"pass_or_fail"`
}

func (r ResultRequest) crossCheck() []ValidationError {
	return checkMeasurement("test_result", r.TestResult)
}

func (r ResultRequest) toModel() models.Result {
	return models.Result{
		SampleID:         r.Sample,
		TestID:           r.Test,
		TestingAnalyst:   strings.TrimSpace(r.TestingAnalyst),
		ReviewingAnalyst: strings.TrimSpace(r.ReviewingAnalyst),
		TestResult:       *r.TestResult,
		Deadline:         r.Deadline.UTC(),
	}
}

func checkMeasurement(field string, v *decimal.Decimal) []ValidationError {
	if v == nil {
		return nil
	}
	if v.Abs().GreaterThanOrEqual(maxMeasurement) {
		return []ValidationError{{Field: field, Description: field + " is out of range"}}
	}
	if !v.Equal(v.Round(measurementScale)) {
		return []ValidationError{{Field: field, Description: field + " allows at most 6 decimal places"}}
	}
	return nil
}

type MaintenanceLogRequest struct {
	Equipment          int          `json:"equipment" validate:"required,gt=0" example:"1"`
	SOP                int          `json:"sop" validate:"required,gt=0" example:"1"`
	ServiceDate        *models.Date `json:"service_date" validate:"required" swaggertype:"string" example:"2024-01-31"`
	ServiceDescription string       `json:"service_description" validate:"required" example:"Replaced electrode"`
	ServiceInterval    string       `json:"service_interval" validate:"required,max=64" example:"6 months"`
	NextServiceDate    *models.Date `json:"next_service_date" validate:"required" swaggertype:"string" example:"2024-07-31"`
}

func (r MaintenanceLogRequest) crossCheck() []ValidationError {
	if r.NextServiceDate.Before(r.ServiceDate.Time) {
		return []ValidationError{{Field: "next_service_date", Description: "next_service_date cannot be before service_date"}}
	}
	return nil
}

func (r MaintenanceLogRequest) toModel() models.MaintenanceLog {
	return models.MaintenanceLog{
		EquipmentID:        r.Equipment,
		SOPID:              r.SOP,
		ServiceDate:        *r.ServiceDate,
		ServiceDescription: strings.TrimSpace(r.ServiceDescription),
		ServiceInterval:    strings.TrimSpace(r.ServiceInterval),
		NextServiceDate:    *r.NextServiceDate,
	}
}

type ReagentRequest struct {
	SOP               int          `json:"sop" validate:"required,gt=0" example:"1"`
	ReagentName       string       `json:"reagent_name" validate:"required,max=255" example:"Sodium chloride"`
	CASNumber         string       `json:"cas_number" validate:"required,max=12" example:"7647-14-5"`
	LotNumber         string       `json:"lot_number" validate:"required,max=255" example:"L-2024-001"`
	Vendor            string       `json:"vendor" validate:"required,max=255" example:"Acme Chemicals"`
	ManufacturingDate *models.Date `json:"manufacturing_date" validate:"required" swaggertype:"string" example:"2024-01-01"`
	ExpirationDate    *models.Date `json:"expiration_date" validate:"required" swaggertype:"string" example:"2026-01-01"`
}

func (r ReagentRequest) crossCheck() []ValidationError {
	if r.ExpirationDate.Before(r.ManufacturingDate.Time) {
		return []ValidationError{{Field: "expiration_date", Description: "expiration_date cannot be before manufacturing_date"}}
	}
	return nil
}

func (r ReagentRequest) toModel() models.Reagent {
	return models.Reagent{
		SOPID:             r.SOP,
		ReagentName:       strings.TrimSpace(r.ReagentName),
		CASNumber:         strings.TrimSpace(r.CASNumber),
		LotNumber:         strings.TrimSpace(r.LotNumber),
		Vendor:            strings.TrimSpace(r.Vendor),
		ManufacturingDate: *r.ManufacturingDate,
		ExpirationDate:    *r.ExpirationDate,
	}
}

type TestReagentLinkRequest struct {
	Test       int              `json:"test" validate:"required,gt=0" example:"1"`
	Reagent    int              `json:"reagent" validate:"required,gt=0" example:"1"`
	VolumeUsed *decimal.Decimal `json:"volume_used" validate:"required" swaggertype:"number" example:"2.5"`
}

func (r TestReagentLinkRequest) crossCheck() []ValidationError {
	if r.VolumeUsed.IsNegative() {
		return []ValidationError{{Field: "volume_used", Description: "volume_used cannot be negative"}}
	}
	return checkMeasurement("volume_used", r.VolumeUsed)
}

func (r TestReagentLinkRequest) toModel() models.TestReagentLink {
	return models.TestReagentLink{TestID: r.Test, ReagentID: r.Reagent, VolumeUsed: *r.VolumeUsed}
}

type TestEquipmentLinkRequest struct {
	Test      int `json:"test" validate:"required,gt=0" example:"1"`
	Equipment int `json:"equipment" validate:"required,gt=0" example:"1"`
}

func (r TestEquipmentLinkRequest) toModel() models.TestEquipmentLink {
	return models.TestEquipmentLink{TestID: r.Test, EquipmentID: r.Equipment}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type ImportRowError struct {
	Row    int               `json:"row"`
	Errors []ValidationError `json:"errors"`
}

type ImportResponse struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}
