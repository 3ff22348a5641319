package tabsink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// parquetTable wraps one generic writer over its destination file. The
// parquet writers buffer row groups internally; rows reach durable storage
// at Close.
type parquetTable[T any] struct {
	file   *os.File
	writer *parquet.GenericWriter[T]
}

func newParquetTable[T any](dir, name string) (*parquetTable[T], error) {
	f, err := os.Create(filepath.Join(dir, name+".parquet"))
	if err != nil {
		return nil, fmt.Errorf("opening %s destination: %w", name, err)
	}
	// The schema is automatically derived from the row struct tags.
	return &parquetTable[T]{file: f, writer: parquet.NewGenericWriter[T](f)}, nil
}

func (t *parquetTable[T]) append(row T) error {
	if t == nil {
		return nil
	}
	_, err := t.writer.Write([]T{row})
	return err
}

func (t *parquetTable[T]) close() error {
	if t == nil {
		return nil
	}
	werr := t.writer.Close()
	cerr := t.file.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// ParquetSink writes the nine tables as snappy-compressed Parquet files in
// one directory.
type ParquetSink struct {
	dir string

	reviews       *parquetTable[schema.ReviewRow]
	reviewers     *parquetTable[schema.ReviewerRow]
	patchsets     *parquetTable[schema.PatchsetRow]
	patchsetFiles *parquetTable[schema.PatchsetFileRow]
	comments      *parquetTable[schema.CommentRow]
	messages      *parquetTable[schema.MessageRow]
	developers    *parquetTable[schema.DeveloperRow]
	participants  *parquetTable[schema.ParticipantRow]
	contributors  *parquetTable[schema.ContributorRow]

	closed bool
}

var _ contract.RowSink = &ParquetSink{} // Compile-time check

// NewParquetSink creates (or truncates) the nine Parquet files under dir.
func NewParquetSink(dir string) (*ParquetSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	s := &ParquetSink{dir: dir}

	// Release any tables opened before a failure.
	ok := false
	defer func() {
		if !ok {
			_ = s.Close()
		}
	}()

	var err error
	if s.reviews, err = newParquetTable[schema.ReviewRow](dir, "reviews"); err != nil {
		return nil, err
	}
	if s.reviewers, err = newParquetTable[schema.ReviewerRow](dir, "reviewers"); err != nil {
		return nil, err
	}
	if s.patchsets, err = newParquetTable[schema.PatchsetRow](dir, "patchsets"); err != nil {
		return nil, err
	}
	if s.patchsetFiles, err = newParquetTable[schema.PatchsetFileRow](dir, "patchset_files"); err != nil {
		return nil, err
	}
	if s.comments, err = newParquetTable[schema.CommentRow](dir, "comments"); err != nil {
		return nil, err
	}
	if s.messages, err = newParquetTable[schema.MessageRow](dir, "messages"); err != nil {
		return nil, err
	}
	if s.developers, err = newParquetTable[schema.DeveloperRow](dir, "developers"); err != nil {
		return nil, err
	}
	if s.participants, err = newParquetTable[schema.ParticipantRow](dir, "participants"); err != nil {
		return nil, err
	}
	if s.contributors, err = newParquetTable[schema.ContributorRow](dir, "contributors"); err != nil {
		return nil, err
	}

	ok = true
	return s, nil
}

// AppendReview writes one review row.
func (s *ParquetSink) AppendReview(row schema.ReviewRow) error { return s.reviews.append(row) }

// AppendReviewer writes one reviewer row.
func (s *ParquetSink) AppendReviewer(row schema.ReviewerRow) error { return s.reviewers.append(row) }

// AppendPatchset writes one patchset row.
func (s *ParquetSink) AppendPatchset(row schema.PatchsetRow) error { return s.patchsets.append(row) }

// AppendPatchsetFile writes one patchset-file row.
func (s *ParquetSink) AppendPatchsetFile(row schema.PatchsetFileRow) error {
	return s.patchsetFiles.append(row)
}

// AppendComment writes one comment row.
func (s *ParquetSink) AppendComment(row schema.CommentRow) error { return s.comments.append(row) }

// AppendMessage writes one message row.
func (s *ParquetSink) AppendMessage(row schema.MessageRow) error { return s.messages.append(row) }

// AppendDeveloper writes one developer row.
func (s *ParquetSink) AppendDeveloper(row schema.DeveloperRow) error {
	return s.developers.append(row)
}

// AppendParticipant writes one participant row.
func (s *ParquetSink) AppendParticipant(row schema.ParticipantRow) error {
	return s.participants.append(row)
}

// AppendContributor writes one contributor row.
func (s *ParquetSink) AppendContributor(row schema.ContributorRow) error {
	return s.contributors.append(row)
}

// Close finalizes every Parquet file. Safe to call more than once.
func (s *ParquetSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	closers := []func() error{
		s.reviews.close,
		s.reviewers.close,
		s.patchsets.close,
		s.patchsetFiles.close,
		s.comments.close,
		s.messages.close,
		s.developers.close,
		s.participants.close,
		s.contributors.close,
	}
	for _, c := range closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
