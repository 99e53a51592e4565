package semver

import (
	"strconv"
)

// identifierListKind distinguishes the two dot-separated identifier lists
// the grammar recognizes: pre-release identifiers reject leading zeros and
// are width-checked when purely numeric; build identifiers allow leading
// zeros and arbitrary-length digit runs (spec.md §3).
type identifierListKind int

const (
	identifierListPrerelease identifierListKind = iota
	identifierListBuild
)

// parseNumeric reads "0 | [1-9][0-9]*" from the stream and returns its
// value, failing with leading-zeros or numeric-overflow as appropriate.
func parseNumeric(s *charStream) (int64, error) {
	start := s.position()
	first, err := s.consumeClass(classDigit)
	if err != nil {
		return 0, err
	}
	digits := []rune{first}
	for s.positiveLookahead(classDigit) {
		d, _ := s.consumeClass(classDigit)
		digits = append(digits, d)
	}
	text := string(digits)
	if len(text) > 1 && text[0] == '0' {
		return 0, leadingZerosError(start, text)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, numericOverflowError(start, text)
	}
	return n, nil
}

// parseVersionCore reads "numeric '.' numeric '.' numeric" in strict mode,
// or, in lenient mode, additionally accepts a bare "M" or "M.m" core with
// the missing trailing components defaulting to zero.
func parseVersionCore(s *charStream, lenient bool) (major, minor, patch int64, err error) {
	major, err = parseNumeric(s)
	if err != nil {
		return 0, 0, 0, err
	}
	if !s.positiveLookahead(classDot) {
		if lenient {
			return major, 0, 0, nil
		}
		_, err = s.consumeClass(classDot)
		return 0, 0, 0, err
	}
	s.consume()
	minor, err = parseNumeric(s)
	if err != nil {
		return 0, 0, 0, err
	}
	if !s.positiveLookahead(classDot) {
		if lenient {
			return major, minor, 0, nil
		}
		_, err = s.consumeClass(classDot)
		return 0, 0, 0, err
	}
	s.consume()
	patch, err = parseNumeric(s)
	if err != nil {
		return 0, 0, 0, err
	}
	return major, minor, patch, nil
}

// parseIdentifier reads one alphanumeric-or-numeric identifier (pre-release)
// or alphanumeric-or-digits identifier (build) up to the next '.', '+' or
// end of input - the "closest endpoint" rule of spec.md §4.2 falls out of
// scanning greedily for the allowed alphabet and stopping at the first
// delimiter, whichever of '.'/outer-terminator comes first.
func parseIdentifier(s *charStream, kind identifierListKind) (string, error) {
	start := s.position()
	var runes []rune
	for {
		if s.positiveLookahead(classDigit, classLetter, classHyphen) {
			r := s.consume()
			runes = append(runes, r)
			continue
		}
		break
	}
	if len(runes) == 0 {
		return "", emptyIdentifierError(start)
	}
	text := string(runes)
	if kind == identifierListPrerelease && isNumericIdentifier(text) {
		if len(text) > 1 && text[0] == '0' {
			return "", leadingZerosError(start, text)
		}
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return "", numericOverflowError(start, text)
		}
	}
	return text, nil
}

// parseIdentifierDotList reads a dot-separated, nonempty sequence of
// identifiers, failing with empty-identifier on a leading, trailing, or
// doubled dot.
func parseIdentifierDotList(s *charStream, kind identifierListKind) ([]string, error) {
	first, err := parseIdentifier(s, kind)
	if err != nil {
		return nil, err
	}
	ids := []string{first}
	for s.positiveLookahead(classDot) {
		s.consume()
		id, err := parseIdentifier(s, kind)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseIdentifierList parses a standalone pre-release or build string (as
// supplied to the facade's constructors, Builder, or SetPrerelease/SetBuild)
// using the same identifier grammar the full version parser uses, followed
// by a mandatory end-of-input check.
func parseIdentifierList(s string, kind identifierListKind) ([]string, error) {
	stream := newCharStream(s)
	ids, err := parseIdentifierDotList(stream, kind)
	if err != nil {
		return nil, err
	}
	if _, err := stream.consumeClass(classEOI); err != nil {
		return nil, err
	}
	return ids, nil
}

// parseVersionString implements the version grammar of spec.md §4.2:
//
//	version      := version-core ( "-" pre-release )? ( "+" build )?
//	version-core := numeric "." numeric "." numeric
//
// In lenient mode, version-core additionally accepts "M" and "M.m",
// defaulting missing components to zero.
func parseVersionString(s string, lenient bool) (Version, error) {
	stream := newCharStream(s)
	major, minor, patch, err := parseVersionCore(stream, lenient)
	if err != nil {
		return Version{}, err
	}

	var pre, build []string
	if stream.positiveLookahead(classHyphen) {
		stream.consume()
		pre, err = parseIdentifierDotList(stream, identifierListPrerelease)
		if err != nil {
			return Version{}, err
		}
	}
	if stream.positiveLookahead(classPlus) {
		stream.consume()
		build, err = parseIdentifierDotList(stream, identifierListBuild)
		if err != nil {
			return Version{}, err
		}
	}
	if r := stream.lookahead(0); r != eoiRune {
		return Version{}, unexpectedCharacter(stream.position(), r, classHyphen.String(), classPlus.String(), classEOI.String())
	}
	return newVersion(major, minor, patch, pre, build), nil
}
