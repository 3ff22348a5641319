// Package schema has the row models, input document models and typed
// constants for all parts of revminer.
package schema

// ReviewRow is the top-level record for one code review thread.
// The commit hash column is a placeholder filled by a later linking stage.
type ReviewRow struct {
	Description string `parquet:"description,snappy"`
	Subject     string `parquet:"subject,snappy"`
	Created     string `parquet:"created,snappy"`
	Modified    string `parquet:"modified,snappy"`
	Issue       int64  `parquet:"issue,snappy"`
	OwnerEmail  string `parquet:"owner_email,snappy"`
	OwnerID     int64  `parquet:"owner_id,snappy"`
	CommitHash  string `parquet:"commit_hash,snappy"`
}

// ReviewerRow links a listed reviewer email to a review.
// Duplicate reviewer entries are preserved; dedup belongs to the loader.
type ReviewerRow struct {
	Issue       int64  `parquet:"issue,snappy"`
	DeveloperID int64  `parquet:"developer_id,snappy"`
	Email       string `parquet:"email,snappy"`
}

// PatchsetRow is one revision of the change under review.
type PatchsetRow struct {
	Created        string `parquet:"created,snappy"`
	NumComments    int32  `parquet:"num_comments,snappy"`
	Message        string `parquet:"message,snappy"`
	Modified       string `parquet:"modified,snappy"`
	OwnerEmail     string `parquet:"owner_email,snappy"`
	OwnerID        int64  `parquet:"owner_id,snappy"`
	Issue          int64  `parquet:"issue,snappy"`
	PatchsetNumber int64  `parquet:"patchset_number,snappy"`
	CompositeID    string `parquet:"composite_patchset_id,snappy"`
}

// PatchsetFileRow is one file touched by a patchset.
type PatchsetFileRow struct {
	Filepath            string `parquet:"filepath,snappy"`
	Status              string `parquet:"status,snappy"`
	NumChunks           int32  `parquet:"num_chunks,snappy"`
	NumAdded            int32  `parquet:"num_added,snappy"`
	NumRemoved          int32  `parquet:"num_removed,snappy"`
	IsBinary            bool   `parquet:"is_binary,snappy"`
	CompositePatchsetID string `parquet:"composite_patchset_id,snappy"`
	CompositeID         string `parquet:"composite_patchset_file_id,snappy"`
}

// CommentRow is one inline comment on a patchset file.
// AuthorID is InvalidDevID when the author email failed validation.
type CommentRow struct {
	AuthorEmail             string `parquet:"author_email,snappy"`
	AuthorID                int64  `parquet:"author_id,snappy"`
	Text                    string `parquet:"text,snappy"`
	Draft                   bool   `parquet:"draft,snappy"`
	Lineno                  int32  `parquet:"lineno,snappy"`
	Date                    string `parquet:"date,snappy"`
	Left                    bool   `parquet:"left,snappy"`
	CompositePatchsetFileID string `parquet:"composite_patchset_file_id,snappy"`
}

// MessageRow is one review-level message, distinct from inline file comments.
type MessageRow struct {
	Sender      string `parquet:"sender,snappy"`
	SenderID    int64  `parquet:"sender_id,snappy"`
	Text        string `parquet:"text,snappy"`
	Approval    bool   `parquet:"approval,snappy"`
	Disapproval bool   `parquet:"disapproval,snappy"`
	Date        string `parquet:"date,snappy"`
	Issue       int64  `parquet:"issue,snappy"`
}

// DeveloperRow maps a surrogate id to a canonical email, 1:1 per run.
type DeveloperRow struct {
	DeveloperID int64  `parquet:"developer_id,snappy"`
	Email       string `parquet:"email,snappy"`
}

// ParticipantRow records that a developer authored at least one comment or
// message on a review. The two trailing columns are reserved for a downstream
// enrichment stage and are always empty at emission time.
type ParticipantRow struct {
	DeveloperID         int64  `parquet:"developer_id,snappy"`
	Issue               int64  `parquet:"issue,snappy"`
	ReviewsWithOwner    *int64 `parquet:"reviews_with_owner,optional,snappy"`
	SecurityExperienced *bool  `parquet:"security_experienced,optional,snappy"`
}

// ContributorRow records that a participant's authored text passed the
// contribution classifier. Contributors are always a subset of participants.
type ContributorRow struct {
	DeveloperID int64 `parquet:"developer_id,snappy"`
	Issue       int64 `parquet:"issue,snappy"`
}

// RunSummary reports per-table emitted row counts for one mining run.
type RunSummary struct {
	Reviews       int64 `json:"reviews"`
	Reviewers     int64 `json:"reviewers"`
	Patchsets     int64 `json:"patchsets"`
	PatchsetFiles int64 `json:"patchset_files"`
	Comments      int64 `json:"comments"`
	Messages      int64 `json:"messages"`
	Developers    int64 `json:"developers"`
	Participants  int64 `json:"participants"`
	Contributors  int64 `json:"contributors"`

	MissingPatchsets int64 `json:"missing_patchsets"`

	DurationMs int64 `json:"duration_ms"`
}

// CorpusStats summarizes a corpus layout without parsing documents.
type CorpusStats struct {
	Root          string `json:"root"`
	Chunks        int    `json:"chunks"`
	ReviewDocs    int    `json:"review_docs"`
	PatchsetDocs  int    `json:"patchset_docs"`
	TotalSizeByte int64  `json:"total_size_bytes"`
}
