package match

// Outcome tells whether an evaluation produced a trustworthy result
type Outcome int

const (
	OK Outcome = iota
	Invalid
)

func (o Outcome) String() string {
	if o == OK {
		return "ok"
	}
	return "invalid"
}

// Evaluate runs the compiled program against one record. The boolean is
// meaningful only when the outcome is OK; Match applies the fallback.
func Evaluate(q CompiledQuery, r FileRecord) (bool, Outcome) {
	if !q.Valid {
		return false, Invalid
	}
	return evalRPN(q.Program, r)
}

func evalRPN(rpn []ProgramToken, r FileRecord) (bool, Outcome) {
	if len(rpn) == 0 {
		return true, OK
	}

	fr := foldRecord(r)
	stack := make([]bool, 0, len(rpn))
	for _, t := range rpn {
		if t.IsPred {
			stack = append(stack, t.Pred.eval(fr))
			continue
		}
		if len(stack) < 2 {
			return false, Invalid
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		if t.Op == OpAnd {
			stack = append(stack, a && b)
		} else {
			stack = append(stack, a || b)
		}
	}

	if len(stack) != 1 {
		return false, Invalid
	}
	return stack[0], OK
}

// Match evaluates the query against r. If the program is malformed, the
// whole source text is matched as a single term instead.
func (q CompiledQuery) Match(r FileRecord) bool {
	if ok, outcome := Evaluate(q, r); outcome == OK {
		return ok
	}
	return TextPredicate(q.Source).Eval(r)
}

// Matches compiles text and tests it against r. Callers testing many records
// should Compile once and use Match.
func Matches(r FileRecord, text string) bool {
	return Compile(text).Match(r)
}
