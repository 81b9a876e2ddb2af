package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/shopspring/decimal"
)

func (d *Dashboard) loadSamples(r *http.Request) *view {
	ctx := r.Context()
	v := d.newView(r, "Samples", "/samples")
	v.Samples = load(ctx, d, v, "samples", d.api.ListSamples)
	v.Locations = load(ctx, d, v, "locations", d.api.ListLocations)
	v.Warehouses = load(ctx, d, v, "warehouses", d.api.ListWarehouses)
	v.SOPs = load(ctx, d, v, "SOPs", d.api.ListSOPs)
	return v
}

func (d *Dashboard) showSamples(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "samples", http.StatusOK, d.loadSamples(r))
}

func (d *Dashboard) createSample(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f := newFormReader(r.PostForm, d.loc)
	in := client.SampleInput{
		ProductName:       f.text("product_name"),
		ProductStage:      f.text("product_stage"),
		Quantity:          f.integer("quantity", "Quantity"),
		SampleType:        models.SampleType(f.text("sample_type")),
		StorageConditions: f.text("storage_conditions"),
		Location:          f.integer("location", "Location"),
		Warehouse:         f.integer("warehouse", "Warehouse"),
		SOP:               f.integer("sop", "SOP"),
	}

	err := f.err()
	if err == nil {
		_, err = d.writer(r).CreateSample(r.Context(), in)
	}
	if err != nil {
		d.submitFailed(w, r, "samples", d.loadSamples(r), err)
		return
	}
	seeOther(w, r)
}

func (d *Dashboard) loadLocations(r *http.Request) *view {
	v := d.newView(r, "Locations", "/locations")
	v.Locations = load(r.Context(), d, v, "locations", d.api.ListLocations)
	return v
}

func (d *Dashboard) showLocations(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "locations", http.StatusOK, d.loadLocations(r))
}

func (d *Dashboard) createLocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f := newFormReader(r.PostForm, d.loc)
	in := client.LocationInput{
		LocationType: f.optionalText("location_type"),
		RoomNumber:   f.integer("room_number", "Room Number"),
	}

	err := f.err()
	if err == nil {
		_, err = d.writer(r).CreateLocation(r.Context(), in)
	}
	if err != nil {
		d.submitFailed(w, r, "locations", d.loadLocations(r), err)
		return
	}
	seeOther(w, r)
}

func (d *Dashboard) loadEquipment(r *http.Request) *view {
	ctx := r.Context()
	v := d.newView(r, "Equipment", "/equipment")
	v.Equipment = load(ctx, d, v, "equipment", d.api.ListEquipment)
	v.Locations = load(ctx, d, v, "locations", d.api.ListLocations)
	v.SOPs = load(ctx, d, v, "SOPs", d.api.ListSOPs)
	return v
}

func (d *Dashboard) showEquipment(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "equipment", http.StatusOK, d.loadEquipment(r))
}

func (d *Dashboard) createEquipment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f := newFormReader(r.PostForm, d.loc)
	in := client.EquipmentInput{
		EquipmentName: f.text("equipment_name"),
		MinUseRange:   f.number("min_use_range", "Min Use Range"),
		MaxUseRange:   f.number("max_use_range", "Max Use Range"),
		InUse:         f.checkbox("in_use"),
		Location:      f.integer("location", "Location"),
		SOP:           f.integer("sop", "SOP"),
	}

	err := f.err()
	if err == nil {
		_, err = d.writer(r).CreateEquipment(r.Context(), in)
	}
	if err != nil {
		d.submitFailed(w, r, "equipment", d.loadEquipment(r), err)
		return
	}
	seeOther(w, r)
}

func (d *Dashboard) loadTests(r *http.Request) *view {
	ctx := r.Context()
	v := d.newView(r, "Tests", "/tests")
	tests := load(ctx, d, v, "tests", d.api.ListTests)
	v.Users = load(ctx, d, v, "users", d.api.ListUsers)
	v.SOPs = load(ctx, d, v, "SOPs", d.api.ListSOPs)

	users := make(map[int]string, len(v.Users))
	for _, u := range v.Users {
		users[u.ID] = u.AccountUsername
	}
	sops := make(map[int]string, len(v.SOPs))
	for _, s := range v.SOPs {
		sops[s.ID] = s.SOPName
	}
	for _, t := range tests {
		v.Tests = append(v.Tests, testRow{Test: t, UserName: users[t.UserAccountID], SOPName: sops[t.SOPID]})
	}
	return v
}

func (d *Dashboard) showTests(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "tests", http.StatusOK, d.loadTests(r))
}

func (d *Dashboard) createTest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f := newFormReader(r.PostForm, d.loc)
	in := client.TestInput{
		UserAccount:         f.integer("user_account", "User"),
		SOP:                 f.integer("sop", "SOP"),
		MinAcceptableResult: f.optionalNumber("min_acceptable_result", "Min Acceptable Result"),
		MaxAcceptableResult: f.optionalNumber("max_acceptable_result", "Max Acceptable Result"),
	}

	err := f.err()
	if err == nil {
		_, err = d.writer(r).CreateTest(r.Context(), in)
	}
	if err != nil {
		d.submitFailed(w, r, "tests", d.loadTests(r), err)
		return
	}
	seeOther(w, r)
}

func (d *Dashboard) loadResults(r *http.Request) *view {
	ctx := r.Context()
	v := d.newView(r, "Sample Test Results", "/results")
	results := load(ctx, d, v, "results", func(ctx context.Context) ([]models.Result, error) {
		return d.api.ListResults(ctx, repo.ResultFilter{})
	})
	v.Samples = load(ctx, d, v, "samples", d.api.ListSamples)
	tests := load(ctx, d, v, "tests", d.api.ListTests)
	for _, t := range tests {
		v.Tests = append(v.Tests, testRow{Test: t})
	}

	names := make(map[int]string, len(v.Samples))
	for _, s := range v.Samples {
		names[s.ID] = s.ProductName
	}
	for _, res := range results {
		name, ok := names[res.SampleID]
		if !ok {
			name = strconv.Itoa(res.SampleID)
		}
		v.Results = append(v.Results, resultRow{Result: res, SampleName: name})
	}
	return v
}

func (d *Dashboard) showResults(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "results", http.StatusOK, d.loadResults(r))
}

func (d *Dashboard) createResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f := newFormReader(r.PostForm, d.loc)
	in := client.ResultInput{
		Sample:           f.integer("sample", "Sample"),
		Test:             f.integer("test", "Test"),
		TestingAnalyst:   f.text("testing_analyst"),
		ReviewingAnalyst: f.text("reviewing_analyst"),
		TestResult:       f.number("test_result", "Test Result"),
		Deadline:         f.datetime("deadline", "Deadline"),
	}

	err := f.err()
	if err == nil {
		in.PassOrFail = grade(d.gradingTests(r.Context()), in.Test, in.TestResult)
		_, err = d.writer(r).CreateResult(r.Context(), in)
	}
	if err != nil {
		d.submitFailed(w, r, "results", d.loadResults(r), err)
		return
	}
	seeOther(w, r)
}

// gradingTests fetches the tests a submitted value is graded against. The API
// recomputes the verdict, so a failure only loses the preview.
func (d *Dashboard) gradingTests(ctx context.Context) []models.Test {
	tests, err := d.api.ListTests(ctx)
	if err != nil {
		d.logger(ctx).Warn().Err(err).Msg("could not load tests for grading")
		return nil
	}
	return tests
}

// grade mirrors the server's acceptance check; an unknown test passes.
func grade(tests []models.Test, testID int, value decimal.Decimal) bool {
	for _, t := range tests {
		if t.ID == testID {
			return t.Accepts(value)
		}
	}
	return true
}
