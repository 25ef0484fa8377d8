package expr

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tEOF tokenKind = iota
	tNumber
	tPlus
	tMinus
	tStar
	tCaret
	tLParen
	tRParen
	tRef   // {a.b}
	tAlias // {!a.b}
	tIdent // a.b, only valid once aliased
)

func (k tokenKind) String() string {
	switch k {
	case tEOF:
		return "end of expression"
	case tNumber:
		return "number"
	case tPlus:
		return "'+'"
	case tMinus:
		return "'-'"
	case tStar:
		return "'*'"
	case tCaret:
		return "'^'"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tRef, tAlias:
		return "reference"
	case tIdent:
		return "identifier"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

type token struct {
	kind   tokenKind
	text   string
	offset int
	value  float64
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func validPath(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if segment == "" || !isIdentStart(segment[0]) {
			return false
		}
		for i := 1; i < len(segment); i++ {
			if !isIdentPart(segment[i]) {
				return false
			}
		}
	}
	return true
}

var operators = map[byte]tokenKind{
	'+': tPlus,
	'-': tMinus,
	'*': tStar,
	'^': tCaret,
	'(': tLParen,
	')': tRParen,
}

func lex(text string) ([]token, error) {
	fail := func(offset int, format string, args ...any) error {
		return &SyntaxError{Text: text, Offset: offset, Msg: fmt.Sprintf(format, args...)}
	}

	var tokens []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || (c == '.' && i+1 < len(text) && isDigit(text[i+1])):
			start := i
			for i < len(text) && isDigit(text[i]) {
				i++
			}
			if i < len(text) && text[i] == '.' {
				i++
				for i < len(text) && isDigit(text[i]) {
					i++
				}
			}
			v, err := strconv.ParseFloat(text[start:i], 64)
			if err != nil {
				return nil, fail(start, "invalid number %q", text[start:i])
			}
			tokens = append(tokens, token{kind: tNumber, text: text[start:i], offset: start, value: v})

		case c == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, fail(i, "unterminated reference")
			}
			body := text[i+1 : i+end]
			kind := tRef
			if strings.HasPrefix(body, "!") {
				kind = tAlias
				body = body[1:]
			}
			path := strings.TrimSpace(body)
			if !validPath(path) {
				return nil, fail(i, "invalid reference path %q", path)
			}
			tokens = append(tokens, token{kind: kind, text: path, offset: i})
			i += end + 1

		case isIdentStart(c):
			start := i
			for i < len(text) && (isIdentPart(text[i]) || text[i] == '.') {
				i++
			}
			path := text[start:i]
			if !validPath(path) {
				return nil, fail(start, "invalid identifier %q", path)
			}
			tokens = append(tokens, token{kind: tIdent, text: path, offset: start})

		default:
			kind, ok := operators[c]
			if !ok {
				return nil, fail(i, "unexpected character %q", c)
			}
			tokens = append(tokens, token{kind: kind, text: string(c), offset: i})
			i++
		}
	}
	return append(tokens, token{kind: tEOF, offset: len(text)}), nil
}
