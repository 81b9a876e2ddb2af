package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/lims-tracker/internal/metrics"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeRaw(w, status, out, headers...)
}

func writeRaw(w http.ResponseWriter, status int, body []byte, headers ...http.Header) error {
	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write JSON response")
	}
}

func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// writeRepoError maps repository sentinels onto HTTP statuses.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error, resource, action string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		http.Error(w, resource+" not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		http.Error(w, fmt.Sprintf("could not %s %s: duplicated value", action, resource), http.StatusConflict)
	case errors.Is(err, repo.ErrInvalidReference):
		http.Error(w, fmt.Sprintf("could not %s %s: referenced record does not exist", action, resource), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("resource", resource).Str("action", action).Msg("repository failure")
		http.Error(w, fmt.Sprintf("could not %s %s", action, resource), http.StatusInternalServerError)
	}
}

// serveList writes the full listing of a resource, going through the list cache when one is set.
func serveList[T any](w http.ResponseWriter, r *http.Request, resource string, fetch func(context.Context) ([]T, error)) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	cacheable := listCache != nil
	var gen int64
	if cacheable {
		payload, current, ok, err := listCache.GetList(ctx, resource)
		gen = current
		switch {
		case err != nil:
			cacheable = false
			log.Warn().Err(err).Str("resource", resource).Msg("list cache unavailable")
		case ok:
			metrics.CacheLookups.WithLabelValues(resource, "hit").Inc()
			if err := writeRaw(w, http.StatusOK, payload); err != nil {
				log.Error().Err(err).Msg("failed to write cached response")
			}
			return
		default:
			metrics.CacheLookups.WithLabelValues(resource, "miss").Inc()
		}
	}

	records, err := fetch(ctx)
	if err != nil {
		writeRepoError(w, r, err, resource, "fetch")
		return
	}
	if records == nil {
		records = []T{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := listCache.SetList(ctx, resource, gen, payload); err != nil {
			log.Warn().Err(err).Str("resource", resource).Msg("failed to cache list")
		}
	}

	if err := writeRaw(w, http.StatusOK, payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func serveOne[T any](w http.ResponseWriter, r *http.Request, resource string, fetch func(context.Context, int) (T, error)) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid "+resource+" ID", http.StatusBadRequest)
		return
	}

	record, err := fetch(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, resource, "fetch")
		return
	}
	respond(w, r, http.StatusOK, record)
}

// respondCreated drops stale cached lists and writes the stored record.
func respondCreated(w http.ResponseWriter, r *http.Request, record any, resources ...string) {
	invalidate(r.Context(), resources...)
	respond(w, r, http.StatusCreated, record)
}

func invalidate(ctx context.Context, resources ...string) {
	if listCache == nil {
		return
	}
	if err := listCache.Invalidate(ctx, resources...); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Strs("resources", resources).Msg("failed to invalidate list cache")
	}
}
