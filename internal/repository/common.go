// Package repository maps logical entity operations onto the document store.
// Repositories own the typed decode boundary: every record scanned off disk
// is schema-checked, and records that fail to parse or validate are logged
// and skipped — a single bad file never takes down a lookup.
package repository

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Logical directories inside the store root.
const (
	usersDir     = "users"
	locationsDir = "locations"
	shiftsDir    = "shifts"
	ordersDir    = "orders"
)

func roleDir(role string) string { return path.Join(usersDir, role) }

var validate = validator.New()

// decode parses a scanned record and checks its shape. ok=false means
// "skip this file", already logged.
func decode[T any](raw []byte, dir string) (*T, bool) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("repository: skipping malformed record")
		return nil, false
	}
	if err := validate.Struct(&rec); err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("repository: skipping invalid record")
		return nil, false
	}
	return &rec, true
}

// NormalizeIdentifier prepares an email-or-phone login identifier for
// comparison: trimmed and lowercased.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCode prepares a 16-digit company/access code — or a businessId
// holding one — for comparison: dashes and spaces stripped, lowercased.
func NormalizeCode(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}
