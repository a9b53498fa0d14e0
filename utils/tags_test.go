package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinTagsRoundTrip(t *testing.T) {
	stored := JoinTags([]string{"Python", " Go ", ""})
	require.Equal(t, "Python,Go", stored)
	require.Equal(t, []string{"Python", "Go"}, SplitTags(stored))
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{}, SplitTags(""))
	require.Equal(t, []string{"a", "b"}, SplitTags(" a , ,b,"))
}

func TestNormalizeTags(t *testing.T) {
	require.Equal(t, "react,node.js", NormalizeTags(" react ,, node.js "))
	require.Equal(t, "", NormalizeTags(" , "))
}
