package match

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Token represents a lexical token
type Token struct {
	Kind  TokenKind
	Value string // word text, comparison text, or the digits of a number
	Num   int64  // only for TokNumber
}

// TokenKind is the type of token
type TokenKind int

const (
	TokWord TokenKind = iota
	TokNumber
	TokCmp
	TokAnd
	TokOr
)

func (k TokenKind) String() string {
	switch k {
	case TokWord:
		return "Word"
	case TokNumber:
		return "Number"
	case TokCmp:
		return "CmpOp"
	case TokAnd:
		return "And"
	case TokOr:
		return "Or"
	default:
		return "Unknown"
	}
}

func (t Token) String() string {
	switch t.Kind {
	case TokWord, TokCmp:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
	case TokNumber:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Num)
	default:
		return t.Kind.String()
	}
}

// Lexer tokenizes a query string. It never fails: anything that is not an
// operator or whitespace ends up in a word.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a lexer over the trimmed input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []rune(strings.TrimSpace(input)),
		pos:   0,
	}
}

// Lex tokenizes the entire input
func Lex(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok, ok := lexer.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// Next returns the next token, or false once the input is exhausted
func (l *Lexer) Next() (Token, bool) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{}, false
	}

	ch := l.input[l.pos]

	switch ch {
	case '&':
		l.pos++
		return Token{Kind: TokAnd, Value: "&"}, true
	case '|':
		l.pos++
		return Token{Kind: TokOr, Value: "|"}, true
	case '<', '>':
		if l.peek(1) == '=' {
			l.pos += 2
			return Token{Kind: TokCmp, Value: string(ch) + "="}, true
		}
		l.pos++
		return Token{Kind: TokCmp, Value: string(ch)}, true
	case '=':
		if l.peek(1) == '=' {
			l.pos += 2
			return Token{Kind: TokCmp, Value: "=="}, true
		}
		// a lone '=' stays a one-character operator and never compares
		l.pos++
		return Token{Kind: TokCmp, Value: "="}, true
	}

	return l.scanWord(), true
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) peek(offset int) rune {
	pos := l.pos + offset
	if pos < len(l.input) {
		return l.input[pos]
	}
	return 0
}

func (l *Lexer) scanWord() Token {
	start := l.pos

	for l.pos < len(l.input) && !isDelim(l.input[l.pos]) {
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if isAllDigits(value) {
		// Digit runs past int64 read as 0.
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			n = 0
		}
		return Token{Kind: TokNumber, Value: value, Num: n}
	}

	return Token{Kind: TokWord, Value: value}
}

func isDelim(ch rune) bool {
	switch ch {
	case '&', '|', '<', '>', '=':
		return true
	}
	return unicode.IsSpace(ch)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
