package catalog

import (
	"testing"

	"github.com/lox/speedbingo/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(findings []Finding) []FindingKind {
	out := make([]FindingKind, len(findings))
	for i, f := range findings {
		out[i] = f.Kind
	}
	return out
}

func TestLintSimilarTags(t *testing.T) {
	t.Parallel()

	c := bingo.Catalog{
		{
			{Name: "a", Types: []string{"cannons", "stars"}},
			{Name: "b", Types: []string{"cannon", "stars"}},
			{Name: "c", Types: []string{"cannons"}},
			{Name: "d", Types: []string{"cannon"}},
		},
	}

	findings := Lint(c)
	require.Len(t, findings, 1)
	assert.Equal(t, SimilarTags, findings[0].Kind)
	assert.Equal(t, "/0/0/types/0", findings[0].Path)
	assert.Contains(t, findings[0].Message, `"cannons" is 1 edit(s) from "cannon"`)
}

func TestLintShortTagsAreNotSimilar(t *testing.T) {
	t.Parallel()

	c := bingo.Catalog{
		{
			{Name: "a", Types: []string{"WF"}},
			{Name: "b", Types: []string{"WF"}},
			{Name: "c", Types: []string{"RR"}},
			{Name: "d", Types: []string{"RR"}},
		},
	}
	assert.Empty(t, Lint(c))
}

func TestLintSingleUseAndDuplicates(t *testing.T) {
	t.Parallel()

	c := bingo.Catalog{
		{
			{Name: "Open 3 Cannons", Types: []string{"cannons"}},
			{Name: "Open 3 Cannons", Types: []string{"cannons"}},
		},
		{
			{Name: "Open 3 Cannons", Types: []string{"bowser"}},
		},
	}

	findings := Lint(c)
	assert.Equal(t, []FindingKind{DuplicateName, SingleUseTag}, kinds(findings))
	assert.Equal(t, "/0/1", findings[0].Path)
	assert.Equal(t, "/1/0/types/0", findings[1].Path)
	assert.Contains(t, findings[1].String(), `tag "bowser"`)
}

func TestLintSampleHasNoDuplicates(t *testing.T) {
	t.Parallel()

	for _, f := range Lint(sample(t)) {
		assert.NotEqual(t, DuplicateName, f.Kind, f.String())
	}
}
