package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result links a sample to a test and stores the measured outcome.
type Result struct {
	ID               int             `json:"id"`
	SampleID         int             `json:"sample"`
	TestID           int             `json:"test"`
	TestingAnalyst   string          `json:"testing_analyst"`
	ReviewingAnalyst string          `json:"reviewing_analyst"`
	TestResult       decimal.Decimal `json:"test_result"`
	Deadline         time.Time       `json:"deadline"`
	PassOrFail       bool            `json:"pass_or_fail"`
}

// Grade sets PassOrFail from the test's acceptance range.
func (r *Result) Grade(t Test) {
	r.PassOrFail = t.Accepts(r.TestResult)
}
