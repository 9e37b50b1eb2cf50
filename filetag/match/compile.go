package match

import "strings"

// CompiledQuery is a query in RPN form. A query that failed validation is
// still usable: it evaluates as a text match on its whole source.
type CompiledQuery struct {
	Source  string
	Program []ProgramToken
	Valid   bool
}

// Compile runs the lexer, infix builder and RPN compiler over text. It never
// fails; check Valid to see whether the structured program will be used.
func Compile(text string) CompiledQuery {
	src := strings.TrimSpace(text)
	if src == "" {
		return CompiledQuery{Valid: true}
	}

	rpn, ok := ToRPN(BuildInfix(Lex(src)))
	return CompiledQuery{Source: src, Program: rpn, Valid: ok}
}

// ToRPN reorders an infix program into postfix with the shunting-yard
// algorithm and reports whether the result is a well-formed expression.
func ToRPN(infix []ProgramToken) ([]ProgramToken, bool) {
	output := make([]ProgramToken, 0, len(infix))
	var ops []ProgramToken

	for _, t := range infix {
		if t.IsPred {
			output = append(output, t)
			continue
		}
		// both operators are left-associative
		for len(ops) > 0 && ops[len(ops)-1].Op.precedence() >= t.Op.precedence() {
			output = append(output, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, t)
	}
	for len(ops) > 0 {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	return output, validRPN(output)
}

// validRPN simulates the evaluation stack depth.
func validRPN(rpn []ProgramToken) bool {
	depth := 0
	for _, t := range rpn {
		if t.IsPred {
			depth++
			continue
		}
		if depth < 2 {
			return false
		}
		depth-- // consumes two, produces one
	}
	return len(rpn) == 0 || depth == 1
}

// Explain renders the program one token per line, in evaluation order.
func (q CompiledQuery) Explain() []string {
	if !q.Valid {
		return []string{"invalid program, matching raw text " + TextPredicate(q.Source).String()}
	}
	if len(q.Program) == 0 {
		return []string{"match all"}
	}
	out := make([]string, 0, len(q.Program))
	for _, t := range q.Program {
		out = append(out, t.String())
	}
	return out
}
