package boolmodel

import (
	"github.com/crillab/gophersat/solver"
)

// Var identifies a Boolean decision variable. Variables are allocated
// sequentially starting at 0 and correspond positionally to entries of
// the model slice returned by Check.
type Var int

// Builder accumulates clauses and at-most-k cardinality constraints over
// a growing set of variables, independent of any particular SAT backend.
type Builder struct {
	nVars      int
	clauses    [][]int
	cardConstr []cardinality
}

type cardinality struct {
	lits []int
	k    int
}

// NewBuilder returns an empty constraint builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewVar allocates and returns a fresh variable.
func (b *Builder) NewVar() Var {
	v := Var(b.nVars)
	b.nVars++
	return v
}

// NVars returns the number of variables allocated so far.
func (b *Builder) NVars() int {
	return b.nVars
}

// Pos returns the positive literal for v ("v is true").
func Pos(v Var) int {
	return int(v) + 1
}

// Neg returns the negative literal for v ("v is false").
func Neg(v Var) int {
	return -(int(v) + 1)
}

// Clause asserts that at least one of lits holds. lits are literals as
// produced by Pos/Neg.
func (b *Builder) Clause(lits ...int) {
	cp := make([]int, len(lits))
	copy(cp, lits)
	b.clauses = append(b.clauses, cp)
}

// Implies asserts a ⇒ b, i.e. the clause (¬a ∨ b).
func (b *Builder) Implies(a, c int) {
	b.Clause(-a, c)
}

// ImpliesAll asserts a ⇒ (c1 ∧ c2 ∧ ...), i.e. one clause per consequent.
func (b *Builder) ImpliesAll(a int, cs ...int) {
	for _, c := range cs {
		b.Implies(a, c)
	}
}

// ImpliesAny asserts a ⇒ (c1 ∨ c2 ∨ ...), i.e. a single clause
// (¬a ∨ c1 ∨ c2 ∨ ...).
func (b *Builder) ImpliesAny(a int, cs ...int) {
	lits := make([]int, 0, len(cs)+1)
	lits = append(lits, -a)
	lits = append(lits, cs...)
	b.Clause(lits...)
}

// Iff asserts a ⇔ b.
func (b *Builder) Iff(a, c int) {
	b.Implies(a, c)
	b.Implies(c, a)
}

// AtMostOne asserts that at most one of lits holds.
func (b *Builder) AtMostOne(lits []int) {
	b.AtMost(lits, 1)
}

// AtMost asserts that at most k of lits hold.
func (b *Builder) AtMost(lits []int, k int) {
	if len(lits) <= k {
		return
	}
	cp := make([]int, len(lits))
	copy(cp, lits)
	b.cardConstr = append(b.cardConstr, cardinality{lits: cp, k: k})
}

// ExactlyOne asserts that exactly one of lits holds: an at-least-one
// clause plus an at-most-one cardinality constraint.
func (b *Builder) ExactlyOne(lits []int) {
	b.Clause(lits...)
	b.AtMostOne(lits)
}

// Build lowers the accumulated clauses and cardinality constraints to a
// gophersat solver.Problem. Together with Check, this is the only code in
// the module that references the gophersat API.
func (b *Builder) Build() *solver.Problem {
	constrs := make([]solver.PBConstr, 0, len(b.clauses)+len(b.cardConstr))
	for _, c := range b.clauses {
		constrs = append(constrs, solver.PropClause(c...))
	}
	for _, c := range b.cardConstr {
		constrs = append(constrs, solver.AtMost(c.lits, c.k))
	}
	return solver.ParsePBConstrs(constrs)
}

// Model reads whether v is true in a satisfying assignment returned by
// the solver.
func Model(model []bool, v Var) bool {
	return model[int(v)]
}
