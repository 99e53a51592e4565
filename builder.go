package semver

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Builder accumulates a normal-version triple plus pre-release and build
// string fragments and emits a Version by assembling them into a single
// canonical string and re-parsing it, so every Builder-constructed Version
// goes through the exact same validation path as Parse (spec.md §4.7).
type Builder struct {
	major, minor, patch int64
	pre, build          string
}

// NewBuilder starts a Builder at 0.0.0 with no pre-release or build.
func NewBuilder() *Builder {
	return &Builder{}
}

// Major sets the builder's major component.
func (b *Builder) Major(major int64) *Builder {
	b.major = major
	return b
}

// Minor sets the builder's minor component.
func (b *Builder) Minor(minor int64) *Builder {
	b.minor = minor
	return b
}

// Patch sets the builder's patch component.
func (b *Builder) Patch(patch int64) *Builder {
	b.patch = patch
	return b
}

// Prerelease sets the builder's pre-release fragment; "" clears it.
func (b *Builder) Prerelease(pre string) *Builder {
	b.pre = pre
	return b
}

// Build sets the builder's build-metadata fragment; "" clears it.
func (b *Builder) Build(build string) *Builder {
	b.build = build
	return b
}

// Version assembles the accumulated fragments into a canonical version
// string and parses it. Fragment-level problems (negative components,
// malformed pre-release or build identifiers) are collected and returned
// together via multierr rather than stopping at the first one, since each
// fragment is independently actionable to the caller.
func (b *Builder) Version() (Version, error) {
	var errs error
	if b.major < 0 {
		errs = multierr.Append(errs, invalidArgument("major must be non-negative, got %d", b.major))
	}
	if b.minor < 0 {
		errs = multierr.Append(errs, invalidArgument("minor must be non-negative, got %d", b.minor))
	}
	if b.patch < 0 {
		errs = multierr.Append(errs, invalidArgument("patch must be non-negative, got %d", b.patch))
	}
	if b.pre != "" {
		if _, err := parseIdentifierList(b.pre, identifierListPrerelease); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("pre-release %q: %w", b.pre, err))
		}
	}
	if b.build != "" {
		if _, err := parseIdentifierList(b.build, identifierListBuild); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("build %q: %w", b.build, err))
		}
	}
	if errs != nil {
		return Version{}, errs
	}

	var s strings.Builder
	fmt.Fprintf(&s, "%d.%d.%d", b.major, b.minor, b.patch)
	if b.pre != "" {
		s.WriteByte('-')
		s.WriteString(b.pre)
	}
	if b.build != "" {
		s.WriteByte('+')
		s.WriteString(b.build)
	}
	return Parse(s.String())
}
