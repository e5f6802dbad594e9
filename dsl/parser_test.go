package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/folio/dsl"
)

const sampleFront = `
title: "Quarterly Report"
author: Jane Doe, PhD
# internal only
keywords: [finance, "internal", Q3 2025]
version: v1.2.0
date: 2025-10-01
empty:
`

func TestParseFrontMatter(t *testing.T) {
	fm, err := dsl.ParseString(sampleFront)
	require.NoError(t, err)
	require.Len(t, fm.Entries, 6)

	values := fm.Values()
	assert.Equal(t, "Quarterly Report", values["title"])
	assert.Equal(t, "Jane Doe, PhD", values["author"])
	assert.Equal(t, []any{"finance", "internal", "Q3 2025"}, values["keywords"])
	assert.Equal(t, "v1.2.0", values["version"])
	assert.Equal(t, "2025-10-01", values["date"])
	assert.Equal(t, "", values["empty"])
}

func TestFrontMatterMeta(t *testing.T) {
	fm, err := dsl.ParseString(sampleFront + "Subject: budgets\ncreator: folio\n")
	require.NoError(t, err)

	meta := fm.Meta()
	assert.Equal(t, "Quarterly Report", meta.Title)
	assert.Equal(t, "Jane Doe, PhD", meta.Author)
	assert.Equal(t, "budgets", meta.Subject)
	assert.Equal(t, "folio", meta.Creator)
	assert.Equal(t, []string{"finance", "internal", "Q3 2025"}, meta.Keywords)
}

func TestScalarKeywordsSplitOnComma(t *testing.T) {
	fm, err := dsl.ParseString("tags: a, b ,c\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fm.Meta().Keywords)
}

func TestMultilineArray(t *testing.T) {
	fm, err := dsl.ParseString("keywords: [\n  one,\n  two,\n]\n")
	require.NoError(t, err)
	assert.Equal(t, []any{"one", "two"}, fm.Values()["keywords"])
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := dsl.ParseString("title \"missing colon\"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1:")
}

func TestNilFrontMatter(t *testing.T) {
	var fm *dsl.FrontMatter
	assert.Empty(t, fm.Values())
	assert.Equal(t, "", fm.Meta().Title)
}

func TestHashInsideWordIsNotComment(t *testing.T) {
	fm, err := dsl.ParseString("title: C# Guide\nauthor: a.b # reviewer\nlang: F#\n")
	require.NoError(t, err)

	values := fm.Values()
	assert.Equal(t, "C# Guide", values["title"])
	assert.Equal(t, "a.b", values["author"])
	assert.Equal(t, "F#", values["lang"])
	assert.Equal(t, "C# Guide", fm.Meta().Title)
}

func TestDottedKeysNest(t *testing.T) {
	fm, err := dsl.ParseString("og.title: Preview\nog.type: article\nsite: docs\n")
	require.NoError(t, err)

	values := fm.Values()
	assert.Equal(t, map[string]any{"title": "Preview", "type": "article"}, values["og"])
	assert.Equal(t, "docs", values["site"])
}
