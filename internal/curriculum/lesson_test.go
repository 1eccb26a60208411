package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wobble-lang/wobble/compiler/errors"
)

const sampleCatalog = `
[[lesson]]
number = 2
title = "Declaring variables"
error_codes = ["E0001", "e8"]
objectives = ["Write a complete let declaration."]
prerequisites = [1]

[[lesson]]
number = 1
title = "Strings"
error_codes = ["E0002"]
objectives = ["Close every string you open."]
`

func TestParseSortsByNumber(t *testing.T) {
	catalog, err := Parse(sampleCatalog)
	require.NoError(t, err)
	require.Len(t, catalog.Lessons, 2)

	assert.Equal(t, 1, catalog.Lessons[0].Number)
	assert.Equal(t, 2, catalog.Lessons[1].Number)
	assert.Equal(t, "Strings", catalog.Lessons[0].Title)
}

func TestParseRejectsInvalidTOML(t *testing.T) {
	_, err := Parse("[[lesson]\nnumber = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse lesson catalog")
}

func TestValidateRejectsDuplicateNumbers(t *testing.T) {
	_, err := Parse(`
[[lesson]]
number = 1
title = "First"

[[lesson]]
number = 1
title = "Also first"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate lesson number 1")
}

func TestValidateRejectsNonPositiveNumbers(t *testing.T) {
	_, err := Parse(`
[[lesson]]
number = 0
title = "Zeroth"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive number")
}

func TestValidateRejectsMalformedErrorCodes(t *testing.T) {
	_, err := Parse(`
[[lesson]]
number = 1
title = "Broken"
error_codes = ["banana"]
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson 1")
}

func TestValidateRejectsUnknownPrerequisites(t *testing.T) {
	_, err := Parse(`
[[lesson]]
number = 2
title = "Second"
prerequisites = [1]
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson 2 requires unknown lesson 1")
}

func TestByNumber(t *testing.T) {
	catalog, err := Parse(sampleCatalog)
	require.NoError(t, err)

	lesson, ok := catalog.ByNumber(2)
	require.True(t, ok)
	assert.Equal(t, "Declaring variables", lesson.Title)

	_, ok = catalog.ByNumber(99)
	assert.False(t, ok)
}

func TestByErrorCode(t *testing.T) {
	catalog, err := Parse(sampleCatalog)
	require.NoError(t, err)

	// Catalog codes are matched after normalization, so "e8" counts.
	lessons := catalog.ByErrorCode(errors.Code("E0008"))
	require.Len(t, lessons, 1)
	assert.Equal(t, 2, lessons[0].Number)

	assert.Empty(t, catalog.ByErrorCode(errors.Code("E0005")))
}

func TestInjectionConfigFor(t *testing.T) {
	catalog, err := Parse(sampleCatalog)
	require.NoError(t, err)

	codes, ok := catalog.InjectionConfigFor(2)
	require.True(t, ok)
	assert.Equal(t, []errors.Code{"E0001", "E0008"}, codes)

	_, ok = catalog.InjectionConfigFor(42)
	assert.False(t, ok)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := Default()
	require.NoError(t, catalog.Validate())

	// Every implemented code is taught somewhere.
	for _, code := range errors.AllCodes() {
		assert.NotEmptyf(t, catalog.ByErrorCode(code), "no lesson teaches %s", code)
	}
}
