package ai

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	tagSplitRegex  = regexp.MustCompile(`[,\n;]+`)
	ErrParseFailed = errors.New("parse_failed")
)

// knownDietaryTags is the vocabulary the model is prompted with; anything
// outside it is dropped.
var knownDietaryTags = map[string]bool{
	"vegan":         true,
	"vegetarian":    true,
	"halal":         true,
	"kosher":        true,
	"gluten_free":   true,
	"dairy_free":    true,
	"nut_free":      true,
	"contains_nuts": true,
	"contains_pork": true,
	"spicy":         true,
}

// ParseDietaryTags extracts dietary tags from model output. Tags may be
// separated by commas, semicolons or newlines; they are lowercased,
// hyphens/spaces normalized to underscores, deduplicated and filtered to the
// known vocabulary. "none" (alone) yields an empty list.
func ParseDietaryTags(text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty output", ErrParseFailed)
	}
	if strings.EqualFold(trimmed, "none") {
		return []string{}, nil
	}

	seen := map[string]bool{}
	tags := make([]string, 0, 4)
	for _, raw := range tagSplitRegex.Split(trimmed, -1) {
		tag := strings.ToLower(strings.TrimSpace(raw))
		tag = strings.NewReplacer("-", "_", " ", "_").Replace(tag)
		if tag == "" || seen[tag] || !knownDietaryTags[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no known dietary tags in %q", ErrParseFailed, trimmed)
	}
	return tags, nil
}
