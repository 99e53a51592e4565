package semver

import "strconv"

// ParseRange parses a range-expression string (spec.md §4.5) into an
// evaluable Predicate. It fails with parse/lexer if the string cannot be
// tokenized, parse/unexpected-token on a grammar violation, or
// arithmetic/overflow if lowering a tilde/caret/wildcard/partial shorthand
// would need to increment a component past the 64-bit width limit.
func ParseRange(s string) (Predicate, error) {
	tokens, err := lex(s)
	if err != nil {
		return nil, err
	}
	ts := newTokenStream(tokens)
	pred, err := parseExpr(ts)
	if err != nil {
		return nil, err
	}
	if _, err := ts.expect(TokenEOI); err != nil {
		return nil, err
	}
	return pred, nil
}

// parseExpr implements "semver-expr more": boolean combinators give the
// same precedence to "&"/"&&" and "|"/"||" and are right-associative by
// construction, since each side of "more" recurses back into a fresh
// parseExpr. Parentheses are the only way to group otherwise; "!" binds
// only to a parenthesized sub-expression.
func parseExpr(t *tokenStream) (Predicate, error) {
	var node Predicate
	var err error

	switch t.peek(0).Kind {
	case TokenNot:
		t.next()
		if _, err = t.expect(TokenLeftParen); err != nil {
			return nil, err
		}
		inner, err := parseExpr(t)
		if err != nil {
			return nil, err
		}
		if _, err = t.expect(TokenRightParen); err != nil {
			return nil, err
		}
		node = Not(inner)
	case TokenLeftParen:
		t.next()
		inner, err := parseExpr(t)
		if err != nil {
			return nil, err
		}
		if _, err = t.expect(TokenRightParen); err != nil {
			return nil, err
		}
		node = inner
	default:
		node, err = parseRange(t)
		if err != nil {
			return nil, err
		}
	}

	switch t.peek(0).Kind {
	case TokenAnd:
		t.next()
		rhs, err := parseExpr(t)
		if err != nil {
			return nil, err
		}
		return And(node, rhs), nil
	case TokenOr:
		t.next()
		rhs, err := parseExpr(t)
		if err != nil {
			return nil, err
		}
		return Or(node, rhs), nil
	default:
		return node, nil
	}
}

// isPartialTerminator reports whether kind is one of the tokens that may
// legally follow a bare partial version (spec.md §4.5 partial-version-range
// disambiguation).
func isPartialTerminator(kind TokenKind) bool {
	switch kind {
	case TokenEOI, TokenAnd, TokenOr, TokenRightParen:
		return true
	default:
		return false
	}
}

// scanVersionPrefix looks ahead, without consuming, through the leading
// "NUMERIC (DOT NUMERIC)*" run and reports how many NUMERIC components it
// saw and the first token that isn't part of that run. This is the
// lookahead the range grammar uses to disambiguate hyphen-range,
// wildcard-range, partial-version-range and comparison-range without
// backtracking.
func (t *tokenStream) scanVersionPrefix() (components int, brk Token) {
	i := 0
	expectNumeric := true
	for {
		tok := t.peek(i)
		if expectNumeric {
			if tok.Kind != TokenNumeric {
				return components, tok
			}
			components++
			i++
			expectNumeric = false
			continue
		}
		if tok.Kind != TokenDot {
			return components, tok
		}
		i++
		expectNumeric = true
	}
}

func parseRange(t *tokenStream) (Predicate, error) {
	tok := t.peek(0)
	switch tok.Kind {
	case TokenTilde:
		t.next()
		major, minor, patch, components, err := parseVersionTriple(t)
		if err != nil {
			return nil, err
		}
		return lowerTilde(major, minor, patch, components)
	case TokenCaret:
		t.next()
		major, minor, patch, components, err := parseVersionTriple(t)
		if err != nil {
			return nil, err
		}
		return lowerCaret(major, minor, patch, components)
	case TokenWildcard:
		t.next()
		return lowerPrefixRange(0, 0, 0)
	case TokenNumeric:
		components, brk := t.scanVersionPrefix()
		switch {
		case brk.Kind == TokenHyphen:
			return parseHyphenRange(t)
		case brk.Kind == TokenWildcard:
			return parseWildcardRange(t, components)
		case components <= 2 && isPartialTerminator(brk.Kind):
			return parsePartialRange(t, components)
		default:
			return parseComparisonRange(t)
		}
	case TokenEqual, TokenNotEqual, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual:
		return parseComparisonRange(t)
	default:
		return nil, unexpectedToken(tok.Pos, tok.Lexeme,
			"TILDE", "CARET", "WILDCARD", "NUMERIC",
			"EQUAL", "NOT_EQUAL", "GREATER", "GREATER_EQUAL", "LESS", "LESS_EQUAL")
	}
}

// parseNumericToken converts a lexed NUMERIC token to int64, reporting
// parse/numeric-overflow if it exceeds the 64-bit width limit. The lexer's
// NUMERIC pattern ("0|[1-9][0-9]*") already rules out leading zeros.
func parseNumericToken(tok Token) (int64, error) {
	n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return 0, numericOverflowError(tok.Pos, tok.Lexeme)
	}
	return n, nil
}

// parseVersionTriple reads "NUMERIC (DOT NUMERIC (DOT NUMERIC)?)?",
// defaulting missing trailing components to zero, and reports how many
// components were explicitly given (1, 2 or 3) since several lowerings
// (tilde, caret) depend on that shape, not merely on the resulting values.
func parseVersionTriple(t *tokenStream) (major, minor, patch int64, components int, err error) {
	majorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	major, err = parseNumericToken(majorTok)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	components = 1
	if t.peek(0).Kind != TokenDot {
		return major, 0, 0, components, nil
	}
	t.next()
	minorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	minor, err = parseNumericToken(minorTok)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	components = 2
	if t.peek(0).Kind != TokenDot {
		return major, minor, 0, components, nil
	}
	t.next()
	patchTok, err := t.expect(TokenNumeric)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	patch, err = parseNumericToken(patchTok)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return major, minor, patch, 3, nil
}

func parseHyphenRange(t *tokenStream) (Predicate, error) {
	lowMajor, lowMinor, lowPatch, _, err := parseVersionTriple(t)
	if err != nil {
		return nil, err
	}
	if _, err := t.expect(TokenHyphen); err != nil {
		return nil, err
	}
	highMajor, highMinor, highPatch, _, err := parseVersionTriple(t)
	if err != nil {
		return nil, err
	}
	return And(
		Gte(verAt(lowMajor, lowMinor, lowPatch)),
		Lte(verAt(highMajor, highMinor, highPatch)),
	), nil
}

func parseWildcardRange(t *tokenStream, components int) (Predicate, error) {
	majorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return nil, err
	}
	major, err := parseNumericToken(majorTok)
	if err != nil {
		return nil, err
	}
	if components == 1 {
		if _, err := t.expect(TokenDot); err != nil {
			return nil, err
		}
		if _, err := t.expect(TokenWildcard); err != nil {
			return nil, err
		}
		return lowerPrefixRange(major, 0, 1)
	}
	if _, err := t.expect(TokenDot); err != nil {
		return nil, err
	}
	minorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return nil, err
	}
	minor, err := parseNumericToken(minorTok)
	if err != nil {
		return nil, err
	}
	if _, err := t.expect(TokenDot); err != nil {
		return nil, err
	}
	if _, err := t.expect(TokenWildcard); err != nil {
		return nil, err
	}
	return lowerPrefixRange(major, minor, 2)
}

func parsePartialRange(t *tokenStream, components int) (Predicate, error) {
	majorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return nil, err
	}
	major, err := parseNumericToken(majorTok)
	if err != nil {
		return nil, err
	}
	if components == 1 {
		return lowerPrefixRange(major, 0, 1)
	}
	if _, err := t.expect(TokenDot); err != nil {
		return nil, err
	}
	minorTok, err := t.expect(TokenNumeric)
	if err != nil {
		return nil, err
	}
	minor, err := parseNumericToken(minorTok)
	if err != nil {
		return nil, err
	}
	return lowerPrefixRange(major, minor, 2)
}

func parseComparisonRange(t *tokenStream) (Predicate, error) {
	op := opEq
	switch t.peek(0).Kind {
	case TokenEqual:
		t.next()
		op = opEq
	case TokenNotEqual:
		t.next()
		op = opNeq
	case TokenGreaterEqual:
		t.next()
		op = opGte
	case TokenGreater:
		t.next()
		op = opGt
	case TokenLessEqual:
		t.next()
		op = opLte
	case TokenLess:
		t.next()
		op = opLt
	}
	major, minor, patch, _, err := parseVersionTriple(t)
	if err != nil {
		return nil, err
	}
	target := verAt(major, minor, patch)
	switch op {
	case opEq:
		return Eq(target), nil
	case opNeq:
		return Neq(target), nil
	case opGt:
		return Gt(target), nil
	case opGte:
		return Gte(target), nil
	case opLt:
		return Lt(target), nil
	case opLte:
		return Lte(target), nil
	default:
		return Eq(target), nil
	}
}

func verAt(major, minor, patch int64) Version {
	return newVersion(major, minor, patch, nil, nil)
}

func boundedRange(low, high Version) Predicate {
	return And(Gte(low), Lt(high))
}

// incComponent increments n, failing with arithmetic/overflow if doing so
// would exceed the 64-bit width limit - the guard that keeps range lowering
// from silently constructing an unsatisfiable, wrapped-around predicate.
func incComponent(n int64) (int64, error) {
	if n >= maxComponent {
		return 0, arithmeticOverflow("range lowering: incrementing %d would overflow 64-bit range", n)
	}
	return n + 1, nil
}

func lowerTilde(major, minor, patch int64, components int) (Predicate, error) {
	switch components {
	case 1:
		next, err := incComponent(major)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, 0, 0), verAt(next, 0, 0)), nil
	case 2:
		next, err := incComponent(minor)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, minor, 0), verAt(major, next, 0)), nil
	default:
		next, err := incComponent(minor)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, minor, patch), verAt(major, next, 0)), nil
	}
}

func lowerCaret(major, minor, patch int64, components int) (Predicate, error) {
	switch components {
	case 1:
		next, err := incComponent(major)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, 0, 0), verAt(next, 0, 0)), nil
	case 2:
		if major > 0 {
			next, err := incComponent(major)
			if err != nil {
				return nil, err
			}
			return boundedRange(verAt(major, minor, 0), verAt(next, 0, 0)), nil
		}
		next, err := incComponent(minor)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(0, minor, 0), verAt(0, next, 0)), nil
	default:
		switch {
		case major > 0:
			next, err := incComponent(major)
			if err != nil {
				return nil, err
			}
			return boundedRange(verAt(major, minor, patch), verAt(next, 0, 0)), nil
		case minor > 0:
			next, err := incComponent(minor)
			if err != nil {
				return nil, err
			}
			return boundedRange(verAt(0, minor, patch), verAt(0, next, 0)), nil
		case patch > 0:
			next, err := incComponent(patch)
			if err != nil {
				return nil, err
			}
			return boundedRange(verAt(0, 0, patch), verAt(0, 0, next)), nil
		default:
			return Eq(verAt(0, 0, 0)), nil
		}
	}
}

// lowerPrefixRange lowers a wildcard-range or partial-version-range given
// its explicit leading components: both forms produce the identical
// predicate for the same prefix (spec.md §4.5).
func lowerPrefixRange(major, minor int64, components int) (Predicate, error) {
	switch components {
	case 0:
		return Gte(verAt(0, 0, 0)), nil
	case 1:
		next, err := incComponent(major)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, 0, 0), verAt(next, 0, 0)), nil
	default:
		next, err := incComponent(minor)
		if err != nil {
			return nil, err
		}
		return boundedRange(verAt(major, minor, 0), verAt(major, next, 0)), nil
	}
}
