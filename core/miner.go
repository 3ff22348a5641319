package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// Miner drives one single-pass walk over a review corpus, emitting rows for
// all nine tables through the configured sink. A Miner is single-use: it owns
// a fresh DevResolver whose ids are scoped to exactly one run.
type Miner struct {
	sink       contract.RowSink
	classifier contract.Classifier
	resolver   *DevResolver
	log        *slog.Logger

	summary schema.RunSummary
}

// NewMiner creates a Miner around a sink and a contribution classifier.
func NewMiner(sink contract.RowSink, classifier contract.Classifier, logger *slog.Logger) *Miner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Miner{
		sink:       sink,
		classifier: classifier,
		resolver:   NewDevResolver(),
		log:        logger,
	}
}

// devSet accumulates distinct developer ids in first-sighting order, so that
// participant and contributor rows come out deterministically.
type devSet struct {
	seen  map[int64]struct{}
	order []int64
}

func newDevSet() *devSet {
	return &devSet{seen: make(map[int64]struct{})}
}

func (s *devSet) add(id int64) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

// reviewAccumulator collects the participant and contributor sets while one
// review's patchsets and messages are being parsed.
type reviewAccumulator struct {
	participants *devSet
	contributors *devSet
}

func newReviewAccumulator() *reviewAccumulator {
	return &reviewAccumulator{
		participants: newDevSet(),
		contributors: newDevSet(),
	}
}

// record applies the shared accumulation rule for comments and messages:
// any resolved author is a participant; authors whose text passes the
// classifier are additionally contributors. Sentinel ids are never recorded.
func (m *Miner) record(acc *reviewAccumulator, id int64, text string) {
	if id == schema.InvalidDevID {
		return
	}
	acc.participants.add(id)
	if m.classifier.Contribution(text) {
		acc.contributors.add(id)
	}
}

// ParseReview processes one top-level review document and everything below
// it. Any error it returns is fatal for the run: there is no partial-document
// recovery, and already-written output must be treated as invalid.
func (m *Miner) ParseReview(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading review document %s: %w", path, err)
	}
	var doc schema.ReviewDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding review document %s: %w", path, err)
	}

	// 1. The review row, with an empty commit hash placeholder that a later
	// linking stage fills in.
	if err := m.sink.AppendReview(schema.ReviewRow{
		Description: doc.Description,
		Subject:     doc.Subject,
		Created:     doc.Created,
		Modified:    doc.Modified,
		Issue:       doc.Issue,
		OwnerEmail:  doc.OwnerEmail,
		OwnerID:     m.resolver.Resolve(doc.OwnerEmail),
		CommitHash:  "",
	}); err != nil {
		return err
	}
	m.summary.Reviews++

	// 2. One reviewer row per listed email, duplicates preserved.
	for _, email := range doc.Reviewers {
		if err := m.sink.AppendReviewer(schema.ReviewerRow{
			Issue:       doc.Issue,
			DeveloperID: m.resolver.Resolve(email),
			Email:       email,
		}); err != nil {
			return err
		}
		m.summary.Reviewers++
	}

	acc := newReviewAccumulator()

	// 3. Patchset side-files, located next to the review document.
	for _, pid := range doc.Patchsets {
		if err := m.parsePatchset(PatchsetDocPath(path, pid), doc.Issue, acc); err != nil {
			return err
		}
	}

	// 4. Review-level messages.
	if err := m.parseMessages(doc.Issue, doc.Messages, acc); err != nil {
		return err
	}

	// 5. Participant and contributor rows, now that every comment and message
	// of this review has been seen.
	for _, id := range acc.participants.order {
		if err := m.sink.AppendParticipant(schema.ParticipantRow{
			DeveloperID: id,
			Issue:       doc.Issue,
		}); err != nil {
			return err
		}
		m.summary.Participants++
	}
	for _, id := range acc.contributors.order {
		if err := m.sink.AppendContributor(schema.ContributorRow{
			DeveloperID: id,
			Issue:       doc.Issue,
		}); err != nil {
			return err
		}
		m.summary.Contributors++
	}
	return nil
}

// parsePatchset loads one patchset side-file and emits its row plus all
// descendant file and comment rows. A missing side-file is a diagnostic, not
// an error: the patchset and its descendants are skipped and the review
// continues.
func (m *Miner) parsePatchset(path string, issue int64, acc *reviewAccumulator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.log.Warn("patchset file should exist but doesn't", "path", path)
			m.summary.MissingPatchsets++
			return nil
		}
		return fmt.Errorf("reading patchset document %s: %w", path, err)
	}
	var doc schema.PatchsetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding patchset document %s: %w", path, err)
	}

	compositeID := schema.PatchsetCompositeID(issue, doc.Patchset)
	if err := m.sink.AppendPatchset(schema.PatchsetRow{
		Created:        doc.Created,
		NumComments:    doc.NumComments,
		Message:        doc.Message,
		Modified:       doc.Modified,
		OwnerEmail:     doc.OwnerEmail,
		OwnerID:        m.resolver.Resolve(doc.OwnerEmail),
		Issue:          issue,
		PatchsetNumber: doc.Patchset,
		CompositeID:    compositeID,
	}); err != nil {
		return err
	}
	m.summary.Patchsets++

	// File entries are a JSON mapping; iterate in sorted path order so that
	// repeated runs emit identical output.
	for _, filepath := range slices.Sorted(maps.Keys(doc.Files)) {
		if err := m.parsePatchsetFile(compositeID, issue, filepath, doc.Files[filepath], acc); err != nil {
			return err
		}
	}
	return nil
}

// parsePatchsetFile emits one patchset-file row and any inline comments under
// it. An absent or null comment list yields zero comment rows.
func (m *Miner) parsePatchsetFile(compositePatchsetID string, issue int64, filepath string, fd schema.FileDiff, acc *reviewAccumulator) error {
	compositeFileID := schema.PatchsetFileCompositeID(compositePatchsetID, filepath)
	if err := m.sink.AppendPatchsetFile(schema.PatchsetFileRow{
		Filepath:            filepath,
		Status:              fd.Status,
		NumChunks:           fd.NumChunks,
		NumAdded:            fd.NumAdded,
		NumRemoved:          fd.NumRemoved,
		IsBinary:            fd.IsBinary,
		CompositePatchsetID: compositePatchsetID,
		CompositeID:         compositeFileID,
	}); err != nil {
		return err
	}
	m.summary.PatchsetFiles++

	// Rietveld stores inline comments under the "messages" key of a file
	// entry, distinct from the review-level message list.
	return m.parseComments(compositeFileID, fd.Messages, acc)
}

// parseComments emits one comment row per inline comment and feeds the
// review's participant/contributor accumulator.
func (m *Miner) parseComments(compositePatchsetFileID string, comments []schema.CommentDoc, acc *reviewAccumulator) error {
	for _, c := range comments {
		authorID := m.resolver.Resolve(c.AuthorEmail)
		if err := m.sink.AppendComment(schema.CommentRow{
			AuthorEmail:             c.AuthorEmail,
			AuthorID:                authorID,
			Text:                    c.Text,
			Draft:                   c.Draft,
			Lineno:                  c.Lineno,
			Date:                    c.Date,
			Left:                    c.Left,
			CompositePatchsetFileID: compositePatchsetFileID,
		}); err != nil {
			return err
		}
		m.summary.Comments++
		m.record(acc, authorID, c.Text)
	}
	return nil
}

// parseMessages emits one message row per review-level message, with the same
// accumulation rule as comments.
func (m *Miner) parseMessages(issue int64, msgs []schema.MessageDoc, acc *reviewAccumulator) error {
	for _, msg := range msgs {
		senderID := m.resolver.Resolve(msg.Sender)
		if err := m.sink.AppendMessage(schema.MessageRow{
			Sender:      msg.Sender,
			SenderID:    senderID,
			Text:        msg.Text,
			Approval:    msg.Approval,
			Disapproval: msg.Disapproval,
			Date:        msg.Date,
			Issue:       issue,
		}); err != nil {
			return err
		}
		m.summary.Messages++
		m.record(acc, senderID, msg.Text)
	}
	return nil
}

// DumpDevelopers writes the resolver's complete mapping as the developers
// table, in assignment order. Called once at run end.
func (m *Miner) DumpDevelopers() error {
	for _, row := range m.resolver.Dump() {
		if err := m.sink.AppendDeveloper(row); err != nil {
			return err
		}
		m.summary.Developers++
	}
	return nil
}

// Summary returns the row counts accumulated so far.
func (m *Miner) Summary() schema.RunSummary {
	return m.summary
}
