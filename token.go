package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jcorbin/brackish/internal/runeio"
)

// TokenKind distinguishes words from the two context control markers.
type TokenKind int

// Token kinds.
const (
	WordToken TokenKind = iota
	EnterToken
	ExitToken
)

// Token is one scanned unit of a line.
type Token struct {
	Kind TokenKind
	Text string
}

func (tok Token) String() string {
	switch tok.Kind {
	case EnterToken:
		return "["
	case ExitToken:
		return "]"
	default:
		return fmt.Sprintf("Word(%v)", runeio.Caret(tok.Text))
	}
}

func wordToken(text string) Token { return Token{WordToken, text} }

var (
	enterToken = Token{Kind: EnterToken}
	exitToken  = Token{Kind: ExitToken}
)

// tokenizer accumulates word runes, emitting tokens through a callback as
// soon as they are complete. It only holds the partial word; finish ends a
// line.
type tokenizer struct {
	word strings.Builder
	emit func(Token)
}

func (tz *tokenizer) scan(r rune) {
	switch {
	case r == '[':
		tz.flush()
		tz.emit(enterToken)
	case r == ']':
		tz.flush()
		tz.emit(exitToken)
	case unicode.IsSpace(r):
		tz.flush()
	default:
		tz.word.WriteRune(r)
	}
}

func (tz *tokenizer) scanString(s string) {
	for _, r := range s {
		tz.scan(r)
	}
}

func (tz *tokenizer) flush() {
	if tz.word.Len() > 0 {
		tz.emit(wordToken(tz.word.String()))
		tz.word.Reset()
	}
}

// finish ends the current line; the line boundary acts as whitespace.
func (tz *tokenizer) finish() { tz.flush() }

// Tokenize returns every token of a single line.
func Tokenize(line string) (toks []Token) {
	tz := tokenizer{emit: func(tok Token) { toks = append(toks, tok) }}
	tz.scanString(line)
	tz.finish()
	return toks
}
