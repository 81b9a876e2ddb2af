package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names so clients can map errors back to their fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// crossChecker is implemented by requests with rules spanning several fields.
type crossChecker interface {
	crossCheck() []ValidationError
}

func validateRequest(req any) []ValidationError {
	errs := []ValidationError{}

	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(req); err != nil {
		if !errors.As(err, &fieldErrs) {
			return append(errs, ValidationError{Description: err.Error()})
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{Field: fe.Field(), Description: describe(fe)})
		}
	}

	if cc, ok := req.(crossChecker); ok && len(errs) == 0 {
		errs = append(errs, cc.crossCheck()...)
	}
	return errs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be less than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot be greater than %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
}

// decodeRequest reads and validates a JSON body, writing the 400 response itself on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := readJSON(w, r, req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return false
	}
	if errs := validateRequest(req); len(errs) > 0 {
		respond(w, r, http.StatusBadRequest, errs)
		return false
	}
	return true
}

// reference is a foreign key carried by a request.
type reference struct {
	field  string
	id     int
	lookup func(ctx context.Context, id int) error
}

func exists[T any](get func(context.Context, int) (T, error)) func(context.Context, int) error {
	return func(ctx context.Context, id int) error {
		_, err := get(ctx, id)
		return err
	}
}

func locationRef(id int) reference {
	return reference{"location", id, exists(locationRepo.GetByID)}
}

func warehouseRef(id int) reference {
	return reference{"warehouse", id, exists(warehouseRepo.GetByID)}
}

func sopRef(id int) reference {
	return reference{"sop", id, exists(sopRepo.GetByID)}
}

func userRef(id int) reference {
	return reference{"user_account", id, exists(userRepo.GetByID)}
}

func sampleRef(id int) reference {
	return reference{"sample", id, exists(sampleRepo.GetByID)}
}

func equipmentRef(id int) reference {
	return reference{"equipment", id, exists(equipmentRepo.GetByID)}
}

func testRef(id int) reference {
	return reference{"test", id, exists(testRepo.GetByID)}
}

func reagentRef(id int) reference {
	return reference{"reagent", id, exists(reagentRepo.GetByID)}
}

// checkReferences reports every referenced id that does not exist.
func checkReferences(ctx context.Context, refs ...reference) ([]ValidationError, error) {
	var errs []ValidationError
	for _, ref := range refs {
		err := ref.lookup(ctx, ref.id)
		switch {
		case err == nil:
		case errors.Is(err, repo.ErrNotFound):
			errs = append(errs, ValidationError{Field: ref.field, Description: fmt.Sprintf("%s %d does not exist", ref.field, ref.id)})
		default:
			return nil, fmt.Errorf("lookup %s %d: %w", ref.field, ref.id, err)
		}
	}
	return errs, nil
}

// referencesExist writes the 400 or 500 response when a reference is missing or cannot be checked.
func referencesExist(w http.ResponseWriter, r *http.Request, resource string, refs ...reference) bool {
	errs, err := checkReferences(r.Context(), refs...)
	if err != nil {
		writeRepoError(w, r, err, resource, "create")
		return false
	}
	if len(errs) > 0 {
		respond(w, r, http.StatusBadRequest, errs)
		return false
	}
	return true
}
