package match

import (
	"strings"
	"testing"
)

func explain(q string) string {
	return strings.Join(Compile(q).Explain(), " ")
}

func TestBuildInfixImplicitAnd(t *testing.T) {
	infix := BuildInfix(Lex("foo bar"))
	if len(infix) != 3 {
		t.Fatalf("expected 3 program tokens, got %v", infix)
	}
	if !infix[0].IsPred || infix[1].IsPred || infix[1].Op != OpAnd || !infix[2].IsPred {
		t.Errorf("expected pred AND pred, got %v", infix)
	}
}

func TestBuildInfixExplicitOperatorSuppressesImplicit(t *testing.T) {
	infix := BuildInfix(Lex("foo | bar"))
	if len(infix) != 3 || infix[1].Op != OpOr {
		t.Fatalf("expected pred OR pred, got %v", infix)
	}
}

func TestBuildInfixComparison(t *testing.T) {
	infix := BuildInfix(Lex("beach YEAR >= 2020"))
	if len(infix) != 3 {
		t.Fatalf("expected 3 program tokens, got %v", infix)
	}
	p := infix[2].Pred
	if p.Kind != PredCompare || p.Field != FieldYear || p.Op != CmpGte || p.Value != 2020 {
		t.Errorf("unexpected comparison predicate: %+v", p)
	}
}

func TestBuildInfixDropsStrayComparison(t *testing.T) {
	for _, q := range []string{"< beach", "beach <", "beach < cat", "size >"} {
		for _, tok := range BuildInfix(Lex(q)) {
			if tok.IsPred && tok.Pred.Kind == PredCompare {
				t.Errorf("%q: unexpected comparison predicate %v", q, tok)
			}
		}
	}
	if got := explain("beach < cat"); got != `text("beach") text("cat") AND` {
		t.Errorf("unexpected program: %s", got)
	}
}

func TestBuildInfixNumberTerm(t *testing.T) {
	infix := BuildInfix(Lex("007"))
	if len(infix) != 1 || infix[0].Pred.Kind != PredText || infix[0].Pred.Text != "7" {
		t.Errorf("expected text(7), got %v", infix)
	}
}

func TestBuildInfixKeywords(t *testing.T) {
	infix := BuildInfix(Lex("Picture VIDEO"))
	if infix[0].Pred.Kind != PredKind || infix[0].Pred.Want != KindPicture {
		t.Errorf("expected kind(picture), got %v", infix[0])
	}
	if infix[2].Pred.Kind != PredKind || infix[2].Pred.Want != KindVideo {
		t.Errorf("expected kind(video), got %v", infix[2])
	}
}

func TestToRPNPrecedence(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"a b | c", `text("a") text("b") AND text("c") OR`},
		{"a | b c", `text("a") text("b") text("c") AND OR`},
		{"a | b | c", `text("a") text("b") OR text("c") OR`},
		{"a & b & c", `text("a") text("b") AND text("c") AND`},
		{"a | b & c | d", `text("a") text("b") text("c") AND OR text("d") OR`},
		{"picture size<=10", `kind(picture) size<=10 AND`},
	}
	for _, tt := range tests {
		if got := explain(tt.query); got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.query, tt.want, got)
		}
	}
}

func TestCompileValidity(t *testing.T) {
	valid := []string{"", "   ", "a", "a b", "a & b", "a | b", "size > 5", "a < "}
	for _, q := range valid {
		if !Compile(q).Valid {
			t.Errorf("%q: expected valid program", q)
		}
	}
	invalid := []string{"&", "|", "a &", "| a", "a & | b", "& | <", "a b &"}
	for _, q := range invalid {
		if Compile(q).Valid {
			t.Errorf("%q: expected invalid program", q)
		}
	}
}

func TestCompileEmpty(t *testing.T) {
	q := Compile("  \t ")
	if !q.Valid || len(q.Program) != 0 || q.Source != "" {
		t.Errorf("expected empty valid program, got %+v", q)
	}
	if got := explain(""); got != "match all" {
		t.Errorf("unexpected explain for empty query: %s", got)
	}
}

func TestCompileKeepsTrimmedSource(t *testing.T) {
	q := Compile("  foo &  ")
	if q.Source != "foo &" {
		t.Errorf("expected trimmed source, got %q", q.Source)
	}
	if got := explain("foo &"); !strings.Contains(got, `text("foo &")`) {
		t.Errorf("expected fallback in explain, got %s", got)
	}
}

func TestValidRPN(t *testing.T) {
	p := predToken(TextPredicate("x"))
	and := opToken(OpAnd)
	if !validRPN(nil) {
		t.Error("empty program must be valid")
	}
	if !validRPN([]ProgramToken{p}) {
		t.Error("single predicate must be valid")
	}
	if validRPN([]ProgramToken{p, p}) {
		t.Error("two predicates without operator must be invalid")
	}
	if validRPN([]ProgramToken{p, and, p}) {
		t.Error("operator before its second operand must be invalid")
	}
	if !validRPN([]ProgramToken{p, p, and}) {
		t.Error("p p AND must be valid")
	}
}
