package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/pyvet/internal/token"
)

// Lexer scans Python source into tokens. Leading whitespace becomes
// INDENT/DEDENT pairs, logical lines end with NEWLINE, and newlines inside
// brackets are joined implicitly. Every token carries its byte span.
type Lexer struct {
	input        string
	position     int  // byte offset of the current char
	readPosition int  // byte offset after the current char
	ch           rune // current char under examination
	line         int
	column       int

	indents      []int // indentation stack, always starts at 0
	pending      []token.Token
	bracketDepth int
	atLineStart  bool
	needNewline  bool // a logical line is open and needs a NEWLINE at EOF
}

func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indents:     []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart && l.bracketDepth == 0 {
		if tok, ok := l.handleIndentation(); ok {
			return tok
		}
	}

	for {
		l.skipSpaces()
		if l.ch == '#' {
			l.skipComment()
			continue
		}
		break
	}

	start, startLine, startCol := l.position, l.line, l.column

	switch l.ch {
	case 0:
		return l.finishEOF()
	case '\n':
		l.readChar()
		if l.bracketDepth > 0 {
			// Implicit line joining inside brackets.
			return l.NextToken()
		}
		l.atLineStart = true
		l.needNewline = false
		return token.Token{Type: token.NEWLINE, Lexeme: "\n", Literal: "\n",
			Offset: start, End: start + 1, Line: startLine, Column: startCol}
	case '(':
		l.bracketDepth++
		return l.single(token.LPAREN, start, startLine, startCol)
	case ')':
		if l.bracketDepth > 0 {
			l.bracketDepth--
		}
		return l.single(token.RPAREN, start, startLine, startCol)
	case '[':
		l.bracketDepth++
		return l.single(token.LBRACKET, start, startLine, startCol)
	case ']':
		if l.bracketDepth > 0 {
			l.bracketDepth--
		}
		return l.single(token.RBRACKET, start, startLine, startCol)
	case '=':
		return l.single(token.ASSIGN, start, startLine, startCol)
	case ':':
		return l.single(token.COLON, start, startLine, startCol)
	case ',':
		return l.single(token.COMMA, start, startLine, startCol)
	case '.':
		if l.peekChar() == '.' {
			l.readChar()
			if l.peekChar() == '.' {
				l.readChar()
				l.readChar()
				return l.makeToken(token.ELLIPSIS, start, startLine, startCol)
			}
			l.readChar()
			return l.illegal(start, startLine, startCol, "unexpected '..'")
		}
		return l.single(token.DOT, start, startLine, startCol)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return l.makeToken(token.ARROW, start, startLine, startCol)
		}
		l.readChar()
		return l.illegal(start, startLine, startCol, "unexpected '-'")
	case '\'', '"':
		return l.readString(l.ch, start, startLine, startCol, false)
	}

	if isDigit(l.ch) {
		return l.readNumber(start, startLine, startCol)
	}
	if (l.ch == 'b' || l.ch == 'B') && (l.peekChar() == '"' || l.peekChar() == '\'') {
		l.readChar()
		return l.readString(l.ch, start, startLine, startCol, true)
	}
	if isIdentStart(l.ch) {
		return l.readIdentifier(start, startLine, startCol)
	}

	ch := l.ch
	l.readChar()
	return l.illegal(start, startLine, startCol, fmt.Sprintf("unexpected character %q", ch))
}

// handleIndentation measures the leading whitespace of the next non-blank
// line and queues the INDENT/DEDENT tokens it implies.
func (l *Lexer) handleIndentation() (token.Token, bool) {
	width := 0
	for {
		switch l.ch {
		case ' ':
			width++
			l.readChar()
			continue
		case '\t':
			width += 8 - width%8
			l.readChar()
			continue
		case '#':
			l.skipComment()
			continue
		case '\n':
			// Blank line: no layout tokens.
			l.readChar()
			width = 0
			continue
		}
		break
	}
	l.atLineStart = false
	if l.ch == 0 {
		return token.Token{}, false
	}

	start, startLine, startCol := l.position, l.line, l.column
	current := l.indents[len(l.indents)-1]
	if width > current {
		l.indents = append(l.indents, width)
		return token.Token{Type: token.INDENT, Offset: start, End: start,
			Line: startLine, Column: startCol}, true
	}
	for width < l.indents[len(l.indents)-1] {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, token.Token{Type: token.DEDENT,
			Offset: start, End: start, Line: startLine, Column: startCol})
	}
	if width != l.indents[len(l.indents)-1] {
		l.pending = append(l.pending, token.Token{Type: token.ILLEGAL,
			Literal: "unindent does not match any outer indentation level",
			Offset:  start, End: start, Line: startLine, Column: startCol})
	}
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, true
	}
	return token.Token{}, false
}

func (l *Lexer) finishEOF() token.Token {
	end := len(l.input)
	if l.needNewline {
		l.needNewline = false
		return token.Token{Type: token.NEWLINE, Lexeme: "", Literal: "",
			Offset: end, End: end, Line: l.line, Column: l.column}
	}
	if len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		return token.Token{Type: token.DEDENT, Offset: end, End: end,
			Line: l.line, Column: l.column}
	}
	return token.Token{Type: token.EOF, Offset: end, End: end,
		Line: l.line, Column: l.column}
}

func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) single(t token.Type, start, line, col int) token.Token {
	l.readChar()
	return l.makeToken(t, start, line, col)
}

func (l *Lexer) makeToken(t token.Type, start, line, col int) token.Token {
	lexeme := l.input[start:l.position]
	l.needNewline = true
	return token.Token{Type: t, Lexeme: lexeme, Literal: lexeme,
		Offset: start, End: l.position, Line: line, Column: col}
}

func (l *Lexer) illegal(start, line, col int, msg string) token.Token {
	l.needNewline = true
	return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position],
		Literal: msg, Offset: start, End: l.position, Line: line, Column: col}
}

func (l *Lexer) readIdentifier(start, line, col int) token.Token {
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tok := l.makeToken(token.IDENT, start, line, col)
	tok.Type = token.LookupIdent(tok.Lexeme)
	return tok
}

func (l *Lexer) readNumber(start, line, col int) token.Token {
	typ := token.INT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		typ = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		peek := l.peekChar()
		if isDigit(peek) || peek == '+' || peek == '-' {
			typ = token.FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.makeToken(typ, start, line, col)
}

func (l *Lexer) readString(quote rune, start, line, col int, bytes bool) token.Token {
	l.readChar() // consume the opening quote
	var value []rune
	for {
		switch l.ch {
		case 0, '\n':
			return l.illegal(start, line, col, "unterminated string literal")
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				value = append(value, '\n')
			case 't':
				value = append(value, '\t')
			case 'r':
				value = append(value, '\r')
			case '0':
				value = append(value, 0)
			case '\\', '\'', '"':
				value = append(value, l.ch)
			default:
				value = append(value, '\\', l.ch)
			}
			l.readChar()
		case quote:
			l.readChar()
			typ := token.STRING
			if bytes {
				typ = token.BYTES
			}
			tok := l.makeToken(typ, start, line, col)
			tok.Literal = string(value)
			return tok
		default:
			value = append(value, l.ch)
			l.readChar()
		}
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
