package models

import "time"

type SampleType string

const (
	SampleInProcess SampleType = "I"
	SampleStability SampleType = "S"
	SampleFinished  SampleType = "F"
)

// SampleTypes lists the accepted sample types in display order.
var SampleTypes = []SampleType{SampleInProcess, SampleStability, SampleFinished}

func (t SampleType) Valid() bool {
	switch t {
	case SampleInProcess, SampleStability, SampleFinished:
		return true
	}
	return false
}

func (t SampleType) Label() string {
	switch t {
	case SampleInProcess:
		return "In-Process"
	case SampleStability:
		return "Stability"
	case SampleFinished:
		return "Finished Product"
	}
	return string(t)
}

// Sample is a physical specimen received by the lab.
type Sample struct {
	ID                int        `json:"id"`
	LocationID        int        `json:"location"`
	WarehouseID       int        `json:"warehouse"`
	SOPID             int        `json:"sop"`
	ProductName       string     `json:"product_name"`
	ProductStage      string     `json:"product_stage"`
	Quantity          int        `json:"quantity"`
	TimeReceived      time.Time  `json:"time_received"`
	SampleType        SampleType `json:"sample_type"`
	StorageConditions string     `json:"storage_conditions"`
}
