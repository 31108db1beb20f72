package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/speedbingo/bingo"
)

// ErrMalformed is wrapped by every error describing a structurally invalid
// catalog.
var ErrMalformed = errors.New("malformed catalog")

// Problem is one validation failure. Path is a JSON pointer into the
// catalog document, e.g. "/3/1/name".
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// ValidationError collects every problem found in a catalog.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", ErrMalformed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformed
}

func malformed(path, msg string) error {
	return &ValidationError{Problems: []Problem{{Path: path, Message: msg}}}
}

// Limits bounds the size of a catalog. A zero field means no limit.
type Limits struct {
	MaxTiers        int
	MaxGoalsPerTier int
	MaxNameBytes    int
	MaxTypes        int
	MaxTypeBytes    int
}

// BoundedLimits returns the capacities of fixed-size deployments, where
// every catalog must fit preallocated storage.
func BoundedLimits() Limits {
	return Limits{
		MaxTiers:        32,
		MaxGoalsPerTier: 10,
		MaxNameBytes:    256,
		MaxTypes:        8,
		MaxTypeBytes:    32,
	}
}

func exceeds(n, limit int) bool {
	return limit > 0 && n > limit
}

// Validate checks a decoded catalog. Every problem is reported, not just the
// first.
func Validate(c bingo.Catalog, limits Limits) error {
	var problems []Problem
	add := func(path, format string, args ...any) {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(c) == 0 {
		add("", "catalog has no tiers")
	}
	if exceeds(len(c), limits.MaxTiers) {
		add("", "%d tiers exceeds limit of %d", len(c), limits.MaxTiers)
	}

	for t, goals := range c {
		if exceeds(len(goals), limits.MaxGoalsPerTier) {
			add(fmt.Sprintf("/%d", t), "%d goals exceeds limit of %d", len(goals), limits.MaxGoalsPerTier)
		}
		for g, goal := range goals {
			path := fmt.Sprintf("/%d/%d", t, g)
			if strings.TrimSpace(goal.Name) == "" {
				add(path+"/name", "goal name is empty")
			}
			if exceeds(len(goal.Name), limits.MaxNameBytes) {
				add(path+"/name", "name is %d bytes, limit is %d", len(goal.Name), limits.MaxNameBytes)
			}
			if exceeds(len(goal.Types), limits.MaxTypes) {
				add(path+"/types", "%d types exceeds limit of %d", len(goal.Types), limits.MaxTypes)
			}
			for k, typ := range goal.Types {
				if typ == "" {
					add(fmt.Sprintf("%s/types/%d", path, k), "type tag is empty")
				}
				if exceeds(len(typ), limits.MaxTypeBytes) {
					add(fmt.Sprintf("%s/types/%d", path, k), "type tag is %d bytes, limit is %d", len(typ), limits.MaxTypeBytes)
				}
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// RequiredTiers lists the tiers a mode can draw from, lowest first.
func RequiredTiers(mode bingo.Mode) []int {
	lo, hi := mode.TierRange()
	tiers := make([]int, 0, hi-lo+1)
	for t := lo; t <= hi; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}

// CheckCoverage reports the tiers a mode can reach that the catalog leaves
// empty. Boards for such a mode fail for some seeds.
func CheckCoverage(c bingo.Catalog, mode bingo.Mode) error {
	missing := c.MissingTiers(mode)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s mode needs tiers %v", bingo.ErrTierMissing, mode, missing)
}
