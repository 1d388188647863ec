package ssa

// Verdict reports the outcome of a structural comparison of two SSA streams.
type Verdict struct {
	Equivalent bool
	Reason     string // empty when Equivalent
}

func (v Verdict) String() string {
	if v.Equivalent {
		return "Programs are equivalent"
	}
	return "Programs are not equivalent: " + v.Reason
}

// Compare is a syntactic pre-filter, not a prover. It checks three signals in
// order: the set of defined SSA names, the number of if branches, and the
// number of assertions. Right-hand sides are never inspected, so two streams
// that differ only in arithmetic compare as equivalent. Deciding real
// semantic equivalence is the SMT consumer's job.
func Compare(a, b []Statement) Verdict {
	if !sameNames(definedNames(a), definedNames(b)) {
		return Verdict{Reason: "different variables used"}
	}
	if countBranches(a, BranchIf) != countBranches(b, BranchIf) {
		return Verdict{Reason: "different control flow"}
	}
	if countAsserts(a) != countAsserts(b) {
		return Verdict{Reason: "different assertions"}
	}
	return Verdict{Equivalent: true}
}

// definedNames collects the versioned name of every Def in a stream.
// Branch and Assert entries define nothing.
func definedNames(stmts []Statement) map[string]struct{} {
	names := make(map[string]struct{})
	for _, s := range stmts {
		if def, ok := s.(*Def); ok {
			names[def.Name] = struct{}{}
		}
	}
	return names
}

func sameNames(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

func countBranches(stmts []Statement, kind BranchKind) int {
	n := 0
	for _, s := range stmts {
		if branch, ok := s.(*Branch); ok && branch.Kind == kind {
			n++
		}
	}
	return n
}

func countAsserts(stmts []Statement) int {
	n := 0
	for _, s := range stmts {
		if _, ok := s.(*Assert); ok {
			n++
		}
	}
	return n
}
