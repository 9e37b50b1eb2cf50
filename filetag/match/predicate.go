package match

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PredicateKind identifies the type of leaf predicate.
type PredicateKind int

const (
	// PredText matches when the file name contains the text or a tag equals it
	PredText PredicateKind = iota

	// PredKind matches on the record kind: "picture", "video"
	PredKind

	// PredCompare compares a numeric record field with a literal: "size > 1000"
	PredCompare
)

func (k PredicateKind) String() string {
	switch k {
	case PredText:
		return "text"
	case PredKind:
		return "kind"
	case PredCompare:
		return "compare"
	default:
		return "unknown"
	}
}

// Field is a record field a comparison can address
type Field int

const (
	FieldUnknown Field = iota
	FieldYear
	FieldSize
)

func lookupField(name string) Field {
	switch strings.ToLower(name) {
	case "year":
		return FieldYear
	case "size":
		return FieldSize
	default:
		return FieldUnknown
	}
}

// CmpOp is a comparison operator
type CmpOp int

const (
	CmpInvalid CmpOp = iota
	CmpLt
	CmpLte
	CmpGt
	CmpGte
	CmpEq
)

func lookupCmpOp(text string) CmpOp {
	switch text {
	case "<":
		return CmpLt
	case "<=":
		return CmpLte
	case ">":
		return CmpGt
	case ">=":
		return CmpGte
	case "==":
		return CmpEq
	default:
		return CmpInvalid
	}
}

func (op CmpOp) String() string {
	switch op {
	case CmpLt:
		return "<"
	case CmpLte:
		return "<="
	case CmpGt:
		return ">"
	case CmpGte:
		return ">="
	case CmpEq:
		return "=="
	default:
		return "?"
	}
}

func (op CmpOp) apply(left, right int64) bool {
	switch op {
	case CmpLt:
		return left < right
	case CmpLte:
		return left <= right
	case CmpGt:
		return left > right
	case CmpGte:
		return left >= right
	case CmpEq:
		return left == right
	default:
		return false
	}
}

// Predicate is a boolean test over one FileRecord. It only holds literal
// values captured at compile time, so a Predicate is safe to share.
type Predicate struct {
	Kind PredicateKind

	// PredText
	Text   string
	folded string

	// PredKind
	Want Kind

	// PredCompare
	Field     Field
	FieldName string // as typed, for display
	Op        CmpOp
	OpText    string // as typed, for display
	Value     int64
}

// TextPredicate builds the unary predicate for a bare term. The keywords
// "picture" and "video" select by kind; anything else matches the file
// name (substring) or a tag (whole), ignoring case.
func TextPredicate(raw string) Predicate {
	tok := strings.TrimSpace(raw)

	switch strings.ToLower(tok) {
	case "picture":
		return Predicate{Kind: PredKind, Want: KindPicture}
	case "video":
		return Predicate{Kind: PredKind, Want: KindVideo}
	}

	return Predicate{Kind: PredText, Text: tok, folded: foldString(tok)}
}

// ComparePredicate builds a field comparison. Unknown fields and operators
// produce a predicate that never matches.
func ComparePredicate(field, op string, value int64) Predicate {
	return Predicate{
		Kind:      PredCompare,
		Field:     lookupField(field),
		FieldName: strings.ToLower(field),
		Op:        lookupCmpOp(op),
		OpText:    op,
		Value:     value,
	}
}

// Eval tests the predicate against a record
func (p Predicate) Eval(r FileRecord) bool {
	return p.eval(foldRecord(r))
}

func (p Predicate) eval(fr foldedRecord) bool {
	r := fr.FileRecord
	switch p.Kind {
	case PredKind:
		return r.Kind == p.Want
	case PredCompare:
		switch p.Field {
		case FieldYear:
			return p.Op.apply(r.Year(), p.Value)
		case FieldSize:
			return p.Op.apply(r.SizeBytes, p.Value)
		default:
			return false
		}
	case PredText:
		if strings.Contains(fr.name, p.folded) {
			return true
		}
		for _, t := range fr.tags {
			if t == p.folded {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (p Predicate) String() string {
	switch p.Kind {
	case PredKind:
		return fmt.Sprintf("kind(%s)", p.Want)
	case PredCompare:
		return p.FieldName + p.OpText + strconv.FormatInt(p.Value, 10)
	default:
		return fmt.Sprintf("text(%q)", p.Text)
	}
}

// foldedRecord carries the case-folded name and tags of a record so a
// program folds them once per record rather than once per predicate.
type foldedRecord struct {
	FileRecord
	name string
	tags []string
}

func foldRecord(r FileRecord) foldedRecord {
	fr := foldedRecord{FileRecord: r, name: foldString(r.FileName)}
	if len(r.Tags) > 0 {
		fr.tags = make([]string, len(r.Tags))
		for i, t := range r.Tags {
			fr.tags[i] = foldString(t)
		}
	}
	return fr
}

// foldString applies simple per-rune case folding. Two strings fold equal
// exactly when strings.EqualFold reports them equal; "ß" stays apart from "ss".
func foldString(s string) string {
	return strings.Map(foldRune, s)
}

// foldRune maps r to the smallest rune in its simple folding orbit.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}
