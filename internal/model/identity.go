package model

import (
	"github.com/google/uuid"

	"github.com/tanishkamehta000/food-truck-tracker/pkg/hash"
)

// ReporterIdentity is the deduplication identity of the human behind a
// report. Quorum counts distinct identities, not raw reports.
type ReporterIdentity struct {
	key       string
	anonymous bool
}

// NewReporterIdentity derives the identity from the submitted credentials:
// reporterId wins over reporterEmail; with neither, the report gets a
// generated ephemeral identity. Ephemeral identities still count toward
// quorum but can never be deduplicated against later reports.
func NewReporterIdentity(reporterID, reporterEmail string) ReporterIdentity {
	if reporterID != "" {
		return ReporterIdentity{key: "id:" + reporterID}
	}
	if reporterEmail != "" {
		// Emails are PII; only their hash is ever persisted.
		return ReporterIdentity{key: "email:" + hash.SHA256Hex(reporterEmail)}
	}
	return ReporterIdentity{key: "anon:" + uuid.NewString(), anonymous: true}
}

// Key is the stable deduplication key stored on the sighting.
func (r ReporterIdentity) Key() string { return r.key }

// Anonymous reports whether the identity was generated rather than supplied.
func (r ReporterIdentity) Anonymous() bool { return r.anonymous }
