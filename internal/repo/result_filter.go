package repo

import "github.com/rogerio-castellano/lims-tracker/internal/models"

// ResultFilter narrows a result listing. Nil fields do not filter.
type ResultFilter struct {
	SampleID   *int
	TestID     *int
	PassOrFail *bool
}

func (rf ResultFilter) Empty() bool {
	return rf.SampleID == nil && rf.TestID == nil && rf.PassOrFail == nil
}

func (rf ResultFilter) matches(r models.Result) bool {
	if rf.SampleID != nil && r.SampleID != *rf.SampleID {
		return false
	}
	if rf.TestID != nil && r.TestID != *rf.TestID {
		return false
	}
	if rf.PassOrFail != nil && r.PassOrFail != *rf.PassOrFail {
		return false
	}
	return true
}
