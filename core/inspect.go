package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reviewlab/revminer/schema"
)

// InspectCorpus summarizes a corpus layout without decoding any documents:
// chunk count, review document count, patchset side-file count and total
// document size. Useful as a cheap sanity check before a long mining run.
func InspectCorpus(corpusDir string) (schema.CorpusStats, error) {
	stats := schema.CorpusStats{Root: corpusDir}

	chunks, err := ListChunks(corpusDir)
	if err != nil {
		return stats, err
	}
	stats.Chunks = len(chunks)

	for _, chunk := range chunks {
		docs, err := ListReviewDocs(chunk)
		if err != nil {
			return stats, err
		}
		stats.ReviewDocs += len(docs)

		for _, doc := range docs {
			if info, err := os.Stat(doc); err == nil {
				stats.TotalSizeByte += info.Size()
			}

			sideDir := strings.TrimSuffix(doc, filepath.Ext(doc))
			sideFiles, err := filepath.Glob(filepath.Join(sideDir, "*.json"))
			if err != nil {
				continue
			}
			stats.PatchsetDocs += len(sideFiles)
			for _, sf := range sideFiles {
				if info, err := os.Stat(sf); err == nil {
					stats.TotalSizeByte += info.Size()
				}
			}
		}
	}
	return stats, nil
}
