package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlab/revminer/schema"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{"plain", "dev@chromium.org", "dev@chromium.org", true},
		{"uppercase", "Dev@Chromium.ORG", "dev@chromium.org", true},
		{"surrounding whitespace", "  dev@chromium.org \n", "dev@chromium.org", true},
		{"plus tag", "dev+review@gmail.com", "dev+review@gmail.com", true},
		{"two letter tld", "dev@example.io", "dev@example.io", true},
		{"four letter tld", "dev@example.info", "dev@example.info", true},
		{"missing at", "not-an-email", "not-an-email", false},
		{"missing tld", "dev@localhost", "dev@localhost", false},
		{"tld too long", "dev@example.museum", "dev@example.museum", false},
		{"empty", "", "", false},
		{"double at", "a@b@example.com", "a@b@example.com", false},
		{"inner space", "dev one@example.com", "dev one@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := SanitizeEmail(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestResolveIdempotence(t *testing.T) {
	r := NewDevResolver()

	first := r.Resolve("Foo@x.com")
	second := r.Resolve("foo@X.com")
	third := r.Resolve("  foo@x.com ")

	assert.Equal(t, int64(1), first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, r.Count())
}

func TestResolveMonotonicAssignment(t *testing.T) {
	r := NewDevResolver()

	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}
	for i, email := range emails {
		id := r.Resolve(email)
		assert.Equal(t, int64(i+1), id, "ids follow first-sighting order with no gaps")
	}

	// Re-resolving never allocates.
	for i, email := range emails {
		assert.Equal(t, int64(i+1), r.Resolve(email))
	}
	assert.Equal(t, len(emails), r.Count())
}

func TestResolveInvalidEmail(t *testing.T) {
	r := NewDevResolver()

	assert.Equal(t, schema.InvalidDevID, r.Resolve("not-an-email"))
	assert.Equal(t, schema.InvalidDevID, r.Resolve(""))
	assert.Equal(t, 0, r.Count(), "invalid emails never enter the mapping")

	// A valid email after invalid ones still starts at 1.
	assert.Equal(t, int64(1), r.Resolve("a@x.com"))
}

func TestDumpAssignmentOrder(t *testing.T) {
	r := NewDevResolver()
	r.Resolve("b@x.com")
	r.Resolve("A@x.com")
	r.Resolve("bad-email")
	r.Resolve("c@x.com")
	r.Resolve("b@x.com") // dup, no new row

	rows := r.Dump()
	require.Len(t, rows, 3)
	assert.Equal(t, schema.DeveloperRow{DeveloperID: 1, Email: "b@x.com"}, rows[0])
	assert.Equal(t, schema.DeveloperRow{DeveloperID: 2, Email: "a@x.com"}, rows[1])
	assert.Equal(t, schema.DeveloperRow{DeveloperID: 3, Email: "c@x.com"}, rows[2])
}
