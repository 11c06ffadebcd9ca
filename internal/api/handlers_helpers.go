// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/models"
	"github.com/tomtom215/nycdatasets/internal/validation"
)

// Error codes returned in models.APIError.Code.
const (
	codeValidation    = validation.ErrorCode
	codeDatabase      = "DATABASE_ERROR"
	codeNotFound      = "NOT_FOUND"
	codeMethod        = "METHOD_NOT_ALLOWED"
	codeRateLimit     = "RATE_LIMIT_EXCEEDED"
	codeInternalError = "INTERNAL_ERROR"
)

// respondJSON marshals v and writes it with proper headers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, data)
}

// writeJSON writes an already serialized body.
func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response. err, when present, is logged but
// never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API error")
	}
	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

// respondAPIError sends a prepared error body.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.ErrorResponse{Error: *apiErr})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
//
// Example:
//
//	req := SearchRequest{Query: r.URL.Query().Get("q")}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, http.StatusBadRequest, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return toModelError(validationErr.ToAPIError())
}

func toModelError(apiErr *validation.APIError) *models.APIError {
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// parseLimit reads ?limit=. A missing or blank value yields defaultValue.
// Anything that is not a non-negative base-10 integer is rejected, as is a
// value above maxValue when maxValue is positive.
func parseLimit(r *http.Request, defaultValue, maxValue int) (int, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return defaultValue, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.APIError{
			Code:    codeValidation,
			Message: "limit must be an integer",
			Details: map[string]interface{}{
				"field": "limit",
				"tag":   "numeric",
				"value": logging.SanitizeValue(raw),
			},
		}
	}

	tag := "gte=0"
	if maxValue > 0 {
		tag = fmt.Sprintf("gte=0,lte=%d", maxValue)
	}
	if verr := validation.ValidateVar("limit", limit, tag); verr != nil {
		return 0, toModelError(verr.ToAPIError())
	}
	return limit, nil
}
