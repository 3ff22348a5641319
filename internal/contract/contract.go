// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/reviewlab/revminer/schema"
)

// RowSink is the set of nine append-only tabular destinations for one run.
// Destinations are acquired empty at run start; Close flushes every
// destination to durable storage. There is no cross-destination atomicity:
// a run that dies mid-way leaves outputs that must all be discarded together.
type RowSink interface {
	AppendReview(row schema.ReviewRow) error
	AppendReviewer(row schema.ReviewerRow) error
	AppendPatchset(row schema.PatchsetRow) error
	AppendPatchsetFile(row schema.PatchsetFileRow) error
	AppendComment(row schema.CommentRow) error
	AppendMessage(row schema.MessageRow) error
	AppendDeveloper(row schema.DeveloperRow) error
	AppendParticipant(row schema.ParticipantRow) error
	AppendContributor(row schema.ContributorRow) error

	// Close flushes and releases all nine destinations. It must be safe to
	// call on every exit path, including after a fatal parse error.
	Close() error
}

// Classifier decides whether a piece of authored text counts as a substantive
// contribution. The concrete heuristic is pluggable; parsers only depend on
// this interface.
type Classifier interface {
	Contribution(text string) bool
}
