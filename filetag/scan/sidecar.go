package scan

import (
	"encoding/json"
	"os"
	"strings"
)

type sidecarDoc struct {
	Tags []struct {
		Title string `json:"title"`
	} `json:"tags"`
}

// readSidecarTags loads tag titles from a sidecar JSON file. A missing or
// malformed sidecar yields no tags.
func readSidecarTags(path string) []string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc sidecarDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil
	}
	out := make([]string, 0, len(doc.Tags))
	for _, t := range doc.Tags {
		if title := strings.TrimSpace(t.Title); title != "" {
			out = append(out, title)
		}
	}
	return out
}
