package handlers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var requiredSampleColumns = []string{
	"location", "warehouse", "sop", "product_name", "product_stage",
	"quantity", "sample_type", "storage_conditions",
}

type csvSampleReader struct {
	reader *csv.Reader
	index  map[string]int
	width  int
	line   int
}

func newCSVSampleReader(r io.Reader) (*csvSampleReader, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// row width is checked per record so one ragged row does not end the import
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, col := range requiredSampleColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV header is missing columns: %s", strings.Join(missing, ", "))
	}
	return &csvSampleReader{reader: reader, index: index, width: len(headers), line: 1}, nil
}

// next returns the next row as a request, or the conversion errors for that row.
func (c *csvSampleReader) next() (SampleRequest, []ValidationError, error) {
	record, err := c.reader.Read()
	if err == io.EOF {
		return SampleRequest{}, nil, err
	}
	c.line++
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return SampleRequest{}, []ValidationError{{Description: "malformed CSV row: " + parseErr.Err.Error()}}, nil
	}
	if err != nil {
		return SampleRequest{}, nil, err
	}
	if len(record) != c.width {
		return SampleRequest{}, []ValidationError{{
			Description: fmt.Sprintf("row has %d fields, header has %d", len(record), c.width),
		}}, nil
	}

	get := func(col string) string {
		i, ok := c.index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		req  SampleRequest
		errs []ValidationError
	)
	toInt := func(col string) int {
		v, err := strconv.Atoi(get(col))
		if err != nil {
			errs = append(errs, ValidationError{Field: col, Description: col + " must be an integer"})
		}
		return v
	}

	req.Location = toInt("location")
	req.Warehouse = toInt("warehouse")
	req.SOP = toInt("sop")
	quantity := toInt("quantity")
	req.Quantity = &quantity
	req.ProductName = get("product_name")
	req.ProductStage = get("product_stage")
	req.SampleType = strings.ToUpper(get("sample_type"))
	req.StorageConditions = get("storage_conditions")

	if v := get("time_received"); v != "" {
		received, err := time.Parse(time.RFC3339, v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "time_received", Description: "time_received must be an RFC3339 timestamp"})
		} else {
			req.TimeReceived = &received
		}
	}
	return req, errs, nil
}

// ImportSamplesHandler godoc
// @Summary Import samples via CSV
// @Description The header row names the sample fields; invalid rows are reported and skipped
// @Tags samples
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportResponse
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /samples/import [post]
// @Security BearerAuth
func ImportSamplesHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := newCSVSampleReader(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	resp := ImportResponse{Errors: []ImportRowError{}}
	for {
		req, convErrs, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			finishImport(ctx, resp.Imported)
			http.Error(w, fmt.Sprintf("CSV read error: %v", err), http.StatusBadRequest)
			return
		}

		rowErrs := convErrs
		if len(rowErrs) == 0 {
			rowErrs = validateRequest(&req)
		}
		if len(rowErrs) == 0 {
			refErrs, err := checkReferences(ctx, req.references()...)
			if err != nil {
				finishImport(ctx, resp.Imported)
				writeRepoError(w, r, err, "sample", "import")
				return
			}
			rowErrs = refErrs
		}
		if len(rowErrs) > 0 {
			resp.Errors = append(resp.Errors, ImportRowError{Row: rows.line, Errors: rowErrs})
			continue
		}

		if _, err := sampleRepo.Create(ctx, req.toModel(now())); err != nil {
			resp.Errors = append(resp.Errors, ImportRowError{
				Row:    rows.line,
				Errors: []ValidationError{{Description: err.Error()}},
			})
			continue
		}
		resp.Imported++
	}

	finishImport(ctx, resp.Imported)
	zerolog.Ctx(ctx).Info().Int("imported", resp.Imported).Int("rejected", len(resp.Errors)).Msg("sample import finished")
	respond(w, r, http.StatusOK, resp)
}

// finishImport drops the cached sample list once any row has been committed,
// including when the import stops early.
func finishImport(ctx context.Context, imported int) {
	if imported > 0 {
		invalidate(ctx, "samples")
	}
}
