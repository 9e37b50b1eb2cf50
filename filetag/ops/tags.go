package ops

import (
	"encoding/json"
	"strings"
)

// NormalizeTags parses comma-separated user input into a tag list
func NormalizeTags(input string) []string {
	return CleanTags(strings.Split(input, ","))
}

// CleanTags trims every tag, drops empty ones and removes exact duplicates,
// keeping the first occurrence.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// EncodeTags renders tags as a compact JSON array
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		// a []string always marshals
		return "[]"
	}
	return string(b)
}

// DecodeTags reads a stored JSON array. Anything that is not an array yields
// no tags; non-string and blank entries are skipped.
func DecodeTags(s string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		if str = strings.TrimSpace(str); str != "" {
			out = append(out, str)
		}
	}
	return out
}
