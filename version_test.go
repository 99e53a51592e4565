package semver_test

import (
	"fmt"
	"testing"

	"github.com/ravelsoft/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	validVersions := []string{
		"1.0.0-alpha-a.b-c-somethinglong+build.1-aef.1-its-okay",
		"1.0.0-rc.1+build.1",
		"2.0.0-rc.1+build.123",
		"1.2.3-beta",
		"10.2.3-DEV-SNAPSHOT",
		"1.2.3-SNAPSHOT-123",
		"1.0.0",
		"2.0.0",
		"1.1.7",
		"2.0.0+build.1848",
		"2.0.1-alpha.1227",
		"1.0.0-alpha+beta",
		"1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
		"1.2.3----R-S.12.9.1--.12+meta",
		"1.2.3----RC-SNAPSHOT.12.9.1--.12",
		"1.0.0+0.build.1-rc.10000aaa-kk-0.1",
		"9223372036854775807.9223372036854775806.9223372036854775805",
		"1.0.0-0A.is.legal",
	}
	for i, version := range validVersions {
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			require.True(t, semver.IsValid(version), "expected %q to be valid", version)
			v, err := semver.Parse(version)
			require.NoError(t, err)
			assert.Equal(t, version, v.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	invalidVersions := []string{
		"1",
		"1.2",
		"1.2.3-0123",
		"1.2.3-0123.0123",
		"1.1.2+.123",
		"+invalid",
		"-invalid",
		"-invalid+invalid",
		"-invalid.01",
		"alpha",
		"alpha.beta",
		"alpha.beta.1",
		"alpha.1",
		"alpha+beta",
		"alpha_beta",
		"alpha.",
		"alpha..",
		"beta",
		"1.0.0-alpha_beta",
		"-alpha.",
		"1.0.0-alpha..",
		"1.0.0-alpha..1",
		"1.0.0-alpha...1",
		"1.0.0-alpha....1",
		"1.0.0-alpha......1",
		"01.1.1",
		"1.01.1",
		"1.1.01",
		"1.2.3.DEV",
		"1.2-SNAPSHOT",
		"1.2.3-+",
		"1.2.3-",
		"1.2.3-.",
		// exceeds this package's 64-bit component width, unlike an
		// arbitrary-precision implementation
		"99999999999999999999999.999999999999999999.99999999999999999",
	}
	for i, version := range invalidVersions {
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			assert.False(t, semver.IsValid(version), "expected %q to be invalid", version)
			_, err := semver.Parse(version)
			require.Error(t, err)
			_, ok := semver.TryParse(version)
			assert.False(t, ok)
		})
	}
}

func TestStrictRejectsLenientAccepts(t *testing.T) {
	for _, s := range []string{"1", "1.2"} {
		t.Run(s, func(t *testing.T) {
			assert.False(t, semver.IsValid(s), "strict mode should reject %q", s)
			_, err := semver.Parse(s)
			require.Error(t, err)

			v, err := semver.ParseLenient(s)
			require.NoError(t, err, "lenient mode should accept %q", s)
			_, ok := semver.TryParseLenient(s)
			assert.True(t, ok)
			if s == "1" {
				assert.Equal(t, "1.0.0", v.String())
			} else {
				assert.Equal(t, "1.2.0", v.String())
			}
		})
	}

	// lenient mode still rejects garbage that isn't even a partial core
	_, err := semver.ParseLenient("not-a-version")
	require.Error(t, err)
}

func TestCompareOrdering(t *testing.T) {
	// from the semver.org precedence example, lowest to highest
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}
	for i := 0; i < len(ordered)-1; i++ {
		lo, err := semver.Parse(ordered[i])
		require.NoError(t, err)
		hi, err := semver.Parse(ordered[i+1])
		require.NoError(t, err)
		assert.True(t, lo.LessThan(hi), "%s should be < %s", ordered[i], ordered[i+1])
		assert.True(t, hi.GreaterThan(lo), "%s should be > %s", ordered[i+1], ordered[i])
		assert.False(t, lo.Equal(hi))
	}
}

func TestEqualIgnoresBuild(t *testing.T) {
	a, err := semver.Parse("1.0.0+build.1")
	require.NoError(t, err)
	b, err := semver.Parse("1.0.0+build.2")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestCompareWithBuild(t *testing.T) {
	withoutBuild, err := semver.Parse("1.0.0")
	require.NoError(t, err)
	withBuild, err := semver.Parse("1.0.0+build.1")
	require.NoError(t, err)
	assert.Equal(t, 0, withoutBuild.Compare(withBuild))
	assert.Equal(t, 1, withoutBuild.CompareWithBuild(withBuild))
	assert.Equal(t, -1, withBuild.CompareWithBuild(withoutBuild))
}

func TestIsStableAndPublicAPI(t *testing.T) {
	v0, _ := semver.Parse("0.9.0")
	v1, _ := semver.Parse("1.2.3")
	v1pre, _ := semver.Parse("1.2.3-rc.1")

	assert.False(t, v0.IsStable())
	assert.False(t, v0.IsPublicAPIStable())
	assert.True(t, v1.IsStable())
	assert.True(t, v1.IsPublicAPIStable())
	assert.False(t, v1pre.IsStable())
	assert.True(t, v1pre.IsPublicAPIStable())

	v1Older, _ := semver.Parse("1.0.0")
	assert.True(t, v1.IsPublicAPICompatibleWith(v1Older))
	assert.False(t, v1Older.IsPublicAPICompatibleWith(v1))
	assert.False(t, v1.IsPublicAPICompatibleWith(v0))
}

func TestIncrementResetsLowerComponents(t *testing.T) {
	v, err := semver.Parse("1.2.3-rc.1+build")
	require.NoError(t, err)

	major, err := v.IncrementMajor()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", major.String())

	minor, err := v.IncrementMinor()
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", minor.String())

	patch, err := v.IncrementPatch()
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", patch.String())
}

func TestIncrementMajorOverflow(t *testing.T) {
	v, err := semver.Of(9223372036854775807, 0, 0)
	require.NoError(t, err)
	_, err = v.IncrementMajor()
	require.Error(t, err)
	var semverErr *semver.Error
	require.ErrorAs(t, err, &semverErr)
	assert.Equal(t, semver.ErrNumericOverflow, semverErr.Kind)
}

func TestIncrementPrerelease(t *testing.T) {
	v, err := semver.Parse("1.2.3-alpha.1")
	require.NoError(t, err)
	bumped, err := v.IncrementPrerelease()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-alpha.2", bumped.String())

	named, err := semver.Parse("1.2.3-alpha")
	require.NoError(t, err)
	named, err = named.IncrementPrerelease()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-alpha.1", named.String())

	stable, err := semver.Parse("1.2.3")
	require.NoError(t, err)
	_, err = stable.IncrementPrerelease()
	require.Error(t, err)
	var semverErr *semver.Error
	require.ErrorAs(t, err, &semverErr)
	assert.Equal(t, semver.ErrInvalidOperation, semverErr.Kind)
}

func TestSetPrerelease(t *testing.T) {
	v, err := semver.Parse("1.2.3")
	require.NoError(t, err)

	withPre, err := v.SetPrerelease("beta.1")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-beta.1", withPre.String())

	cleared, err := withPre.SetPrerelease("")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cleared.String())

	_, err = v.SetPrerelease("01")
	require.Error(t, err)
}

func ExampleParse() {
	v, err := semver.Parse("1.2.3-beta.1+build.7")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.String())
	fmt.Println(v.Major(), v.Minor(), v.Patch())
	fmt.Println(v.PrereleaseString())
	// Output:
	// 1.2.3-beta.1+build.7
	// 1 2 3
	// beta.1
}

func ExampleVersion_LessThan() {
	a, _ := semver.Parse("1.0.0-alpha")
	b, _ := semver.Parse("1.0.0")
	fmt.Println(a.LessThan(b))
	// Output:
	// true
}
