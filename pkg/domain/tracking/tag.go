package tracking

import (
	"regexp"
	"strconv"
	"strings"
)

// TagKind classifies a tracker tag after parsing.
type TagKind string

const (
	TagStage       TagKind = "stage"
	TagDeliverable TagKind = "deliverable"
	TagOther       TagKind = "other"
)

// Tag is the typed form of a raw tracker tag. Hierarchy placement operates
// on these records instead of re-matching strings at every call site.
type Tag struct {
	Kind   TagKind
	Number int
	Raw    string
}

var tagNumber = regexp.MustCompile(`\d+`)

// Tag prefixes matched case-insensitively. "Etapa"/"Entregable" are the
// labels the upstream project uses; the English forms are accepted too.
var (
	stagePrefixes       = []string{"stage", "etapa"}
	deliverablePrefixes = []string{"deliverable", "entregable"}
)

// ParseTag classifies a single raw tag. The number is the first embedded
// integer, 0 when the tag carries none.
func ParseTag(raw string) Tag {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	kind := TagOther
	switch {
	case hasAnyPrefix(lower, stagePrefixes):
		kind = TagStage
	case hasAnyPrefix(lower, deliverablePrefixes):
		kind = TagDeliverable
	}

	number := 0
	if m := tagNumber.FindString(trimmed); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			number = n
		}
	}

	return Tag{Kind: kind, Number: number, Raw: trimmed}
}

// ParseTags classifies every tag, preserving tracker order.
func ParseTags(raw []string) []Tag {
	if len(raw) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		tags = append(tags, ParseTag(r))
	}
	return tags
}

// TagsOfKind filters parsed tags by kind, preserving order.
func TagsOfKind(tags []Tag, kind TagKind) []Tag {
	var out []Tag
	for _, t := range tags {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
