// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package validation checks API query parameters with go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// reflection data and is safe for concurrent use. Field names in messages
// come from the `query` struct tag, so a failure reads the way the client
// spelled the parameter:
//
//	type SearchRequest struct {
//	    Query string `query:"q" validate:"max=256"`
//	    Limit int    `query:"limit" validate:"gte=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Bounds that come from configuration rather than struct tags, such as the
// maximum ?limit=, go through ValidateVar:
//
//	verr := validation.ValidateVar("limit", n, fmt.Sprintf("gte=0,lte=%d", max))
//
// # Error Format
//
// ToAPIError produces the VALIDATION_ERROR shape used by every endpoint:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "limit must be greater than or equal to 0",
//	    "details": {"field": "limit", "tag": "gte", "value": -1}
//	}
//
// Several failing fields are joined into one message and listed under
// details.fields.
package validation
