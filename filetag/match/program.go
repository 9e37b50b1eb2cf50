package match

import "strconv"

// OpKind is a binary boolean operator
type OpKind int

const (
	OpAnd OpKind = iota + 1
	OpOr
)

func (o OpKind) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

// precedence: & binds tighter than |
func (o OpKind) precedence() int {
	if o == OpAnd {
		return 2
	}
	return 1
}

// ProgramToken is one element of an infix or RPN program: either a
// predicate or an operator.
type ProgramToken struct {
	IsPred bool
	Pred   Predicate
	Op     OpKind
}

func predToken(p Predicate) ProgramToken {
	return ProgramToken{IsPred: true, Pred: p}
}

func opToken(op OpKind) ProgramToken {
	return ProgramToken{Op: op}
}

func (t ProgramToken) String() string {
	if t.IsPred {
		return t.Pred.String()
	}
	return t.Op.String()
}

// BuildInfix turns lexer tokens into an infix program. Adjacent predicates
// with no operator between them are joined with an implicit AND, and stray
// comparison operators are dropped.
func BuildInfix(tokens []Token) []ProgramToken {
	var infix []ProgramToken

	pushPred := func(p Predicate) {
		if len(infix) > 0 && infix[len(infix)-1].IsPred {
			infix = append(infix, opToken(OpAnd))
		}
		infix = append(infix, predToken(p))
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch t.Kind {
		case TokAnd:
			infix = append(infix, opToken(OpAnd))
		case TokOr:
			infix = append(infix, opToken(OpOr))
		case TokWord:
			if i+2 < len(tokens) && tokens[i+1].Kind == TokCmp && tokens[i+2].Kind == TokNumber {
				pushPred(ComparePredicate(t.Value, tokens[i+1].Value, tokens[i+2].Num))
				i += 2
				continue
			}
			pushPred(TextPredicate(t.Value))
		case TokNumber:
			// numbers are plain terms too, in canonical form ("007" searches "7")
			pushPred(TextPredicate(strconv.FormatInt(t.Num, 10)))
		}
	}

	return infix
}
