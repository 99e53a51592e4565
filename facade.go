package semver

// Parse parses s as a strict "major.minor.patch[-pre][+build]" string
// (spec.md §4.2) and fails with one of the *Error discriminants in errors.go
// if s is not a valid version.
func Parse(s string) (Version, error) {
	return parseVersionString(s, false)
}

// TryParse parses s and reports whether it succeeded, discarding any parse
// error - the only place in this package that swallows a parse failure.
func TryParse(s string) (Version, bool) {
	v, err := Parse(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// IsValid reports whether s parses as a valid version. It is defined
// exactly as "TryParse succeeds".
func IsValid(s string) bool {
	_, ok := TryParse(s)
	return ok
}

// ParseLenient parses s like Parse, but additionally accepts a bare "M" or
// "M.m" version core, filling the missing minor and/or patch components
// with zero (spec.md §4.2).
func ParseLenient(s string) (Version, error) {
	return parseVersionString(s, true)
}

// TryParseLenient parses s like ParseLenient and reports whether it
// succeeded, discarding any parse error.
func TryParseLenient(s string) (Version, bool) {
	v, err := ParseLenient(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// Of constructs a Version from a normal-version triple with no pre-release
// or build metadata. Negative arguments fail with invalid-argument.
func Of(major, minor, patch int64) (Version, error) {
	return OfWithPrerelease(major, minor, patch, "")
}

// OfWithPrerelease constructs a Version with a pre-release identifier list;
// pre == "" means absent.
func OfWithPrerelease(major, minor, patch int64, pre string) (Version, error) {
	return OfFull(major, minor, patch, pre, "")
}

// OfFull constructs a Version from every component. pre == "" and
// build == "" mean their respective identifier lists are absent. Negative
// numeric arguments, or a pre/build string that fails its identifier
// grammar, fail with an error.
func OfFull(major, minor, patch int64, pre, build string) (Version, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return Version{}, invalidArgument("version components must be non-negative, got (%d, %d, %d)", major, minor, patch)
	}
	var preIDs, buildIDs []string
	if pre != "" {
		ids, err := parseIdentifierList(pre, identifierListPrerelease)
		if err != nil {
			return Version{}, err
		}
		preIDs = ids
	}
	if build != "" {
		ids, err := parseIdentifierList(build, identifierListBuild)
		if err != nil {
			return Version{}, err
		}
		buildIDs = ids
	}
	return newVersion(major, minor, patch, preIDs, buildIDs), nil
}

// Satisfies reports whether v satisfies predicate.
func (v Version) Satisfies(predicate Predicate) bool {
	return predicate.Eval(v)
}

// SatisfiesExpression parses expression as a range expression (spec.md
// §4.5) and reports whether v satisfies it, or returns the parse error.
func (v Version) SatisfiesExpression(expression string) (bool, error) {
	predicate, err := ParseRange(expression)
	if err != nil {
		return false, err
	}
	return v.Satisfies(predicate), nil
}
