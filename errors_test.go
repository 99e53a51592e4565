package semver_test

import (
	"errors"
	"testing"

	"github.com/ravelsoft/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCarriesKindAndMessage(t *testing.T) {
	_, err := semver.Parse("1.2.3-alpha..beta")
	require.Error(t, err)
	var semverErr *semver.Error
	require.ErrorAs(t, err, &semverErr)
	assert.Equal(t, semver.ErrEmptyIdentifier, semverErr.Kind)
	assert.NotEmpty(t, semverErr.Error())
}

func TestErrorIsMatchesByKind(t *testing.T) {
	_, err := semver.Parse("01.2.3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &semver.Error{Kind: semver.ErrLeadingZeros}))
	assert.False(t, errors.Is(err, &semver.Error{Kind: semver.ErrNumericOverflow}))
}

func TestUnexpectedCharacterReportsExpectedClasses(t *testing.T) {
	_, err := semver.Parse("1.2.3_beta")
	require.Error(t, err)
	var semverErr *semver.Error
	require.ErrorAs(t, err, &semverErr)
	assert.Equal(t, semver.ErrUnexpectedCharacter, semverErr.Kind)
	assert.ElementsMatch(t, []string{"'-'", "'+'", "end-of-input"}, semverErr.Expected)
}
