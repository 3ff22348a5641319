// Package core holds the single-pass corpus mining pipeline.
package core

import (
	"regexp"
	"strings"

	"github.com/reviewlab/revminer/schema"
)

// emailPattern is a basic local-part@domain check with a 2-4 letter TLD-like
// suffix. It is applied after whitespace and case normalization.
var emailPattern = regexp.MustCompile(`^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)

// DevResolver canonicalizes raw email strings into deduplicated surrogate
// integer ids. It is the only mutable state shared across one mining run and
// must be freshly constructed per run; it is not safe for concurrent use.
type DevResolver struct {
	ids    map[string]int64
	emails []string // canonical emails in assignment order
	next   int64
}

// NewDevResolver creates an empty resolver whose first assigned id is 1.
func NewDevResolver() *DevResolver {
	return &DevResolver{
		ids: make(map[string]int64),
	}
}

// SanitizeEmail normalizes a raw email string and reports whether it is a
// structurally valid address.
func SanitizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	return email, emailPattern.MatchString(email)
}

// Resolve returns the surrogate id for a raw email. Invalid emails return
// InvalidDevID without mutating the mapping. Valid unseen emails are assigned
// the next sequential id; valid seen emails return their existing id.
func (r *DevResolver) Resolve(rawEmail string) int64 {
	email, valid := SanitizeEmail(rawEmail)
	if !valid {
		return schema.InvalidDevID
	}
	if id, ok := r.ids[email]; ok {
		return id
	}
	r.next++
	r.ids[email] = r.next
	r.emails = append(r.emails, email)
	return r.next
}

// Count returns the number of distinct developers seen so far.
func (r *DevResolver) Count() int {
	return len(r.emails)
}

// Dump returns the complete mapping in assignment order (ascending id).
func (r *DevResolver) Dump() []schema.DeveloperRow {
	rows := make([]schema.DeveloperRow, 0, len(r.emails))
	for i, email := range r.emails {
		rows = append(rows, schema.DeveloperRow{
			DeveloperID: int64(i + 1),
			Email:       email,
		})
	}
	return rows
}
