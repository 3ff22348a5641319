package tabsink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

// csvTable pairs one destination file with its writer.
type csvTable struct {
	file   *os.File
	writer *csv.Writer
}

// CSVSink writes the nine tables as headerless CSV files in one directory,
// matching the layout the downstream loader expects. Column order per table
// is fixed and must not change.
type CSVSink struct {
	dir    string
	tables map[string]*csvTable
	closed bool
}

var _ contract.RowSink = &CSVSink{} // Compile-time check

// NewCSVSink creates (or truncates) the nine CSV files under dir.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	s := &CSVSink{
		dir:    dir,
		tables: make(map[string]*csvTable, len(schema.TableNames)),
	}
	for _, name := range schema.TableNames {
		f, err := os.Create(filepath.Join(dir, name+".csv"))
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("opening %s destination: %w", name, err)
		}
		s.tables[name] = &csvTable{file: f, writer: csv.NewWriter(f)}
	}
	return s, nil
}

func (s *CSVSink) write(table string, record []string) error {
	if err := s.tables[table].writer.Write(record); err != nil {
		return fmt.Errorf("writing %s row: %w", table, err)
	}
	return nil
}

// AppendReview writes one review row.
func (s *CSVSink) AppendReview(row schema.ReviewRow) error {
	return s.write("reviews", []string{
		row.Description,
		row.Subject,
		row.Created,
		row.Modified,
		formatInt(row.Issue),
		row.OwnerEmail,
		formatInt(row.OwnerID),
		row.CommitHash,
	})
}

// AppendReviewer writes one reviewer row.
func (s *CSVSink) AppendReviewer(row schema.ReviewerRow) error {
	return s.write("reviewers", []string{
		formatInt(row.Issue),
		formatInt(row.DeveloperID),
		row.Email,
	})
}

// AppendPatchset writes one patchset row.
func (s *CSVSink) AppendPatchset(row schema.PatchsetRow) error {
	return s.write("patchsets", []string{
		row.Created,
		formatInt(int64(row.NumComments)),
		row.Message,
		row.Modified,
		row.OwnerEmail,
		formatInt(row.OwnerID),
		formatInt(row.Issue),
		formatInt(row.PatchsetNumber),
		row.CompositeID,
	})
}

// AppendPatchsetFile writes one patchset-file row.
func (s *CSVSink) AppendPatchsetFile(row schema.PatchsetFileRow) error {
	return s.write("patchset_files", []string{
		row.Filepath,
		row.Status,
		formatInt(int64(row.NumChunks)),
		formatInt(int64(row.NumAdded)),
		formatInt(int64(row.NumRemoved)),
		formatBool(row.IsBinary),
		row.CompositePatchsetID,
		row.CompositeID,
	})
}

// AppendComment writes one comment row.
func (s *CSVSink) AppendComment(row schema.CommentRow) error {
	return s.write("comments", []string{
		row.AuthorEmail,
		formatInt(row.AuthorID),
		row.Text,
		formatBool(row.Draft),
		formatInt(int64(row.Lineno)),
		row.Date,
		formatBool(row.Left),
		row.CompositePatchsetFileID,
	})
}

// AppendMessage writes one message row.
func (s *CSVSink) AppendMessage(row schema.MessageRow) error {
	return s.write("messages", []string{
		row.Sender,
		formatInt(row.SenderID),
		row.Text,
		formatBool(row.Approval),
		formatBool(row.Disapproval),
		row.Date,
		formatInt(row.Issue),
	})
}

// AppendDeveloper writes one developer row.
func (s *CSVSink) AppendDeveloper(row schema.DeveloperRow) error {
	return s.write("developers", []string{
		formatInt(row.DeveloperID),
		row.Email,
	})
}

// AppendParticipant writes one participant row. The two enrichment columns
// stay empty until the downstream analysis stage fills them.
func (s *CSVSink) AppendParticipant(row schema.ParticipantRow) error {
	return s.write("participants", []string{
		formatInt(row.DeveloperID),
		formatInt(row.Issue),
		formatNullableInt(row.ReviewsWithOwner),
		formatNullableBool(row.SecurityExperienced),
	})
}

// AppendContributor writes one contributor row.
func (s *CSVSink) AppendContributor(row schema.ContributorRow) error {
	return s.write("contributors", []string{
		formatInt(row.DeveloperID),
		formatInt(row.Issue),
	})
}

// Close flushes every table to durable storage and releases the files.
// It is safe to call more than once.
func (s *CSVSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for _, name := range schema.TableNames {
		t := s.tables[name]
		if t == nil {
			continue
		}
		t.writer.Flush()
		if err := t.writer.Error(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("flushing %s: %w", name, err)
		}
		if err := t.file.Sync(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("syncing %s: %w", name, err)
		}
		if err := t.file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %s: %w", name, err)
		}
	}
	return firstErr
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatNullableInt(v *int64) string {
	if v == nil {
		return ""
	}
	return formatInt(*v)
}

func formatNullableBool(v *bool) string {
	if v == nil {
		return ""
	}
	return formatBool(*v)
}
