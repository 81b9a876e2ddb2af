package dashboard

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// datetime-local inputs carry no zone
const datetimeLocalLayout = "2006-01-02T15:04"

type formError []string

func (e formError) Error() string {
	return strings.Join(e, "; ")
}

// formReader converts submitted strings into typed values, collecting every problem.
type formReader struct {
	values url.Values
	loc    *time.Location
	errs   formError
}

func newFormReader(values url.Values, loc *time.Location) *formReader {
	return &formReader{values: values, loc: loc}
}

func (f *formReader) text(name string) string {
	return strings.TrimSpace(f.values.Get(name))
}

func (f *formReader) optionalText(name string) *string {
	v := f.text(name)
	if v == "" {
		return nil
	}
	return &v
}

func (f *formReader) present(name, label string) (string, bool) {
	v := f.text(name)
	if v == "" {
		f.errs = append(f.errs, label+" is required")
		return "", false
	}
	return v, true
}

func (f *formReader) integer(name, label string) int {
	v, ok := f.present(name, label)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.errs = append(f.errs, label+" must be a whole number")
	}
	return n
}

func (f *formReader) number(name, label string) decimal.Decimal {
	v, ok := f.present(name, label)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.errs = append(f.errs, label+" must be a number")
	}
	return d
}

func (f *formReader) optionalNumber(name, label string) decimal.NullDecimal {
	v := f.text(name)
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.errs = append(f.errs, label+" must be a number")
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func (f *formReader) checkbox(name string) bool {
	switch strings.ToLower(f.text(name)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func (f *formReader) datetime(name, label string) time.Time {
	v, ok := f.present(name, label)
	if !ok {
		return time.Time{}
	}
	if t, err := time.ParseInLocation(datetimeLocalLayout, v, f.loc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	f.errs = append(f.errs, label+" must be a date and time")
	return time.Time{}
}

func (f *formReader) err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs
}
