package core

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// chunkPattern matches the chunk directories of a corpus root.
const chunkPattern = "chunk*"

// ListChunks enumerates the chunk directories under a corpus root.
func ListChunks(corpusDir string) ([]string, error) {
	chunks, err := filepath.Glob(filepath.Join(corpusDir, chunkPattern))
	if err != nil {
		return nil, fmt.Errorf("listing chunks under %s: %w", corpusDir, err)
	}
	return chunks, nil
}

// ListReviewDocs enumerates the per-review JSON documents within one chunk.
func ListReviewDocs(chunkDir string) ([]string, error) {
	docs, err := filepath.Glob(filepath.Join(chunkDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing review documents under %s: %w", chunkDir, err)
	}
	return docs, nil
}

// PatchsetDocPath derives a patchset side-file path from its review document
// path and the patchset id, e.g. chunk01/10854242.json + 1001 ->
// chunk01/10854242/1001.json.
func PatchsetDocPath(reviewDocPath string, patchsetID int64) string {
	dir := strings.TrimSuffix(reviewDocPath, filepath.Ext(reviewDocPath))
	return filepath.Join(dir, strconv.FormatInt(patchsetID, 10)+".json")
}

// Walk enumerates every review document under the corpus root and invokes the
// miner on each, in directory-listing order. The first fatal parse error
// aborts the walk.
func (m *Miner) Walk(corpusDir string) error {
	chunks, err := ListChunks(corpusDir)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no chunk directories found under %s", corpusDir)
	}
	for _, chunk := range chunks {
		docs, err := ListReviewDocs(chunk)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := m.ParseReview(doc); err != nil {
				return err
			}
		}
	}
	return nil
}
