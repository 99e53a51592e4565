package semver

// Predicate is an evaluable node of the range-expression AST: a leaf
// comparison against a target Version, or a boolean combinator over other
// Predicates. It is immutable; Eval is a pure function of the tree and the
// version under test.
type Predicate interface {
	Eval(v Version) bool
}

type comparisonOp int

const (
	opEq comparisonOp = iota
	opNeq
	opGt
	opGte
	opLt
	opLte
)

type comparisonPredicate struct {
	op     comparisonOp
	target Version
}

func (p comparisonPredicate) Eval(v Version) bool {
	switch p.op {
	case opEq:
		return v.Equal(p.target)
	case opNeq:
		return !v.Equal(p.target)
	case opGt:
		return v.GreaterThan(p.target)
	case opGte:
		return v.GreaterThanOrEqual(p.target)
	case opLt:
		return v.LessThan(p.target)
	case opLte:
		return v.LessThanOrEqual(p.target)
	default:
		return false
	}
}

// Eq builds a leaf predicate matching versions with precedence equal to
// target.
func Eq(target Version) Predicate { return comparisonPredicate{opEq, target} }

// Neq builds a leaf predicate matching versions with precedence different
// from target.
func Neq(target Version) Predicate { return comparisonPredicate{opNeq, target} }

// Gt builds a leaf predicate matching versions with strictly higher
// precedence than target.
func Gt(target Version) Predicate { return comparisonPredicate{opGt, target} }

// Gte builds a leaf predicate matching versions with precedence >= target.
func Gte(target Version) Predicate { return comparisonPredicate{opGte, target} }

// Lt builds a leaf predicate matching versions with strictly lower
// precedence than target.
func Lt(target Version) Predicate { return comparisonPredicate{opLt, target} }

// Lte builds a leaf predicate matching versions with precedence <= target.
func Lte(target Version) Predicate { return comparisonPredicate{opLte, target} }

type andPredicate struct{ left, right Predicate }

func (p andPredicate) Eval(v Version) bool { return p.left.Eval(v) && p.right.Eval(v) }

type orPredicate struct{ left, right Predicate }

func (p orPredicate) Eval(v Version) bool { return p.left.Eval(v) || p.right.Eval(v) }

type notPredicate struct{ inner Predicate }

func (p notPredicate) Eval(v Version) bool { return !p.inner.Eval(v) }

// And combines two predicates with short-circuit boolean conjunction.
func And(left, right Predicate) Predicate { return andPredicate{left, right} }

// Or combines two predicates with short-circuit boolean disjunction.
func Or(left, right Predicate) Predicate { return orPredicate{left, right} }

// Not negates a predicate.
func Not(inner Predicate) Predicate { return notPredicate{inner} }
