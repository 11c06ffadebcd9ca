// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package logging

import "strings"

// maxLoggedValueLen bounds user-supplied strings written to logs.
const maxLoggedValueLen = 128

// SanitizeValue strips control characters from a client-supplied value and
// bounds its length so query strings cannot forge or flood log lines.
func SanitizeValue(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, value)

	runes := []rune(cleaned)
	if len(runes) > maxLoggedValueLen {
		return string(runes[:maxLoggedValueLen]) + "...[truncated]"
	}
	return cleaned
}
