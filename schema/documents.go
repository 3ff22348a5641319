package schema

// Input document models for the Rietveld-style review corpus. Fields that may
// be absent or null in the export decode to zero values; collections decode to
// nil slices/maps, which every consumer treats as empty.

// ReviewDoc is the top-level JSON document for one code review.
type ReviewDoc struct {
	Description string       `json:"description"`
	Subject     string       `json:"subject"`
	Created     string       `json:"created"`
	Modified    string       `json:"modified"`
	Issue       int64        `json:"issue"`
	OwnerEmail  string       `json:"owner_email"`
	Reviewers   []string     `json:"reviewers"`
	Patchsets   []int64      `json:"patchsets"`
	Messages    []MessageDoc `json:"messages"`
}

// PatchsetDoc is the side-file document for one patchset, stored next to the
// review document in a same-named subdirectory, named by patchset number.
type PatchsetDoc struct {
	Created     string              `json:"created"`
	NumComments int32               `json:"num_comments"`
	Message     string              `json:"message"`
	Modified    string              `json:"modified"`
	OwnerEmail  string              `json:"owner_email"`
	Patchset    int64               `json:"patchset"`
	Files       map[string]FileDiff `json:"files"`
}

// FileDiff is the per-file metadata inside a patchset document. The Messages
// key holds inline comments; Rietveld conflates "messages" with "comments"
// at this level.
type FileDiff struct {
	Status     string       `json:"status"`
	NumChunks  int32        `json:"num_chunks"`
	NumAdded   int32        `json:"num_added"`
	NumRemoved int32        `json:"num_removed"`
	IsBinary   bool         `json:"is_binary"`
	Messages   []CommentDoc `json:"messages"`
}

// CommentDoc is one inline comment on a patchset file.
type CommentDoc struct {
	AuthorEmail string `json:"author_email"`
	Text        string `json:"text"`
	Draft       bool   `json:"draft"`
	Lineno      int32  `json:"lineno"`
	Date        string `json:"date"`
	Left        bool   `json:"left"`
}

// MessageDoc is one review-level message.
type MessageDoc struct {
	Sender      string `json:"sender"`
	Text        string `json:"text"`
	Approval    bool   `json:"approval"`
	Disapproval bool   `json:"disapproval"`
	Date        string `json:"date"`
}
