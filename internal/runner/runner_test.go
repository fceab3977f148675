package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsBuildAppliesShorthandClasses(t *testing.T) {
	opts := &Options{Digits: true, Words: true, MinRepetitions: 1, MinSubstringLength: 1}
	pattern := opts.Build([]string{"a", "aa", "123"})
	assert.Equal(t, `^(?:\d\d\d|\w(?:\w)?)$`, pattern)
}

func TestOptionsBuildAppliesRepetitionsAndGroups(t *testing.T) {
	opts := &Options{ConvertRepetitions: true, MinRepetitions: 1, MinSubstringLength: 1}
	pattern := opts.Build([]string{"aa", "bcbc", "defdefdef"})
	assert.Equal(t, "^(?:a{2}|(?:bc){2}|(?:def){3})$", pattern)
}

func TestOptionsBuildWithoutAnchors(t *testing.T) {
	opts := &Options{NoAnchors: true, MinRepetitions: 1, MinSubstringLength: 1}
	pattern := opts.Build([]string{"a", "aa", "aaa"})
	assert.Equal(t, "a(?:aa?)?", pattern)
}

func TestOptionsResolveCasesFromCaseFlag(t *testing.T) {
	opts := &Options{Cases: []string{"cat", "dog"}}
	cases := opts.ResolveCases()
	require.Len(t, cases, 2)
	assert.ElementsMatch(t, []string{"cat", "dog"}, cases)
}
