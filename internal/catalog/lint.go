package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lox/speedbingo/bingo"
)

// FindingKind classifies a lint finding.
type FindingKind string

const (
	// SingleUseTag is a type tag no other goal shares, so it never adds
	// synergy and usually signals a typo.
	SingleUseTag FindingKind = "single-use-tag"
	// SimilarTags are two tags a small edit apart.
	SimilarTags FindingKind = "similar-tags"
	// DuplicateName is a goal name repeated within one tier.
	DuplicateName FindingKind = "duplicate-name"
)

// Finding is a non-fatal observation about a catalog.
type Finding struct {
	Kind    FindingKind
	Path    string
	Message string
}

func (f Finding) String() string {
	if f.Path == "" {
		return fmt.Sprintf("[%s] %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Kind, f.Path, f.Message)
}

// similarityLimit is the largest edit distance still reported for tags of a
// given length. Short tags like course codes differ by one letter legitimately.
func similarityLimit(n int) int {
	switch {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

// Lint looks for likely mistakes that validation accepts. Findings are
// ordered by kind, then path.
func Lint(c bingo.Catalog) []Finding {
	var findings []Finding

	uses := make(map[string]int)
	firstUse := make(map[string]string)
	for t, goals := range c {
		names := make(map[string]int)
		for g, goal := range goals {
			path := fmt.Sprintf("/%d/%d", t, g)
			if prev, dup := names[goal.Name]; dup {
				findings = append(findings, Finding{
					Kind:    DuplicateName,
					Path:    path,
					Message: fmt.Sprintf("%q repeats goal /%d/%d", goal.Name, t, prev),
				})
			} else {
				names[goal.Name] = g
			}
			for k, typ := range goal.Types {
				uses[typ]++
				if _, ok := firstUse[typ]; !ok {
					firstUse[typ] = fmt.Sprintf("%s/types/%d", path, k)
				}
			}
		}
	}

	tags := make([]string, 0, len(uses))
	for tag := range uses {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		if uses[tag] == 1 {
			findings = append(findings, Finding{
				Kind:    SingleUseTag,
				Path:    firstUse[tag],
				Message: fmt.Sprintf("tag %q is used by only one goal", tag),
			})
		}
	}

	for i, a := range tags {
		for _, b := range tags[i+1:] {
			limit := similarityLimit(min(len(a), len(b)))
			if limit == 0 {
				continue
			}
			dist := levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
			if dist <= limit {
				findings = append(findings, Finding{
					Kind:    SimilarTags,
					Path:    firstUse[b],
					Message: fmt.Sprintf("tag %q is %d edit(s) from %q", b, dist, a),
				})
			}
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Kind != findings[j].Kind {
			return findings[i].Kind < findings[j].Kind
		}
		return findings[i].Path < findings[j].Path
	})
	return findings
}
