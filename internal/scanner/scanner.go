package scanner

import (
	"errors"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/token"
)

// Scanner turns Ghost source text into a flat token stream.
type Scanner interface {
	// SetSource resets the scanner state and installs a new input.
	SetSource(input string) Scanner

	// Scan returns the tokens of the current source, always terminated by a single EOF token.
	// Lexical errors do not stop the scan; they are reported as they are found
	// and returned joined together once the whole input is consumed.
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"and":      token.AND,
	"class":    token.CLASS,
	"else":     token.ELSE,
	"false":    token.FALSE,
	"for":      token.FOR,
	"function": token.FUNCTION,
	"if":       token.IF,
	"let":      token.LET,
	"null":     token.NULL,
	"or":       token.OR,
	"print":    token.PRINT,
	"return":   token.RETURN,
	"parent":   token.PARENT,
	"this":     token.THIS,
	"true":     token.TRUE,
	"while":    token.WHILE,
}

// Keywords returns the reserved words in lexical order.
func Keywords() []string {
	keywords := maps.Keys(reservedKeywords)
	slices.Sort(keywords)
	return keywords
}

type scanner struct {
	source               []rune
	tokens               []token.Token
	start, current, line int
	errs                 []error
	reporter             ghosterrors.ErrReporter
}

// NewScanner returns a new Scanner.
func NewScanner(input string, reporter ghosterrors.ErrReporter) Scanner {
	if reporter == nil {
		reporter = ghosterrors.NopReporter
	}
	s := &scanner{reporter: reporter}
	return s.SetSource(input)
}

// SetSource implements Scanner.
func (s *scanner) SetSource(input string) Scanner {
	s.source = []rune(input)
	s.tokens = nil
	s.start, s.current, s.line = 0, 0, 1
	s.errs = nil
	return s
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))

	return s.tokens, errors.Join(s.errs...)
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	case '"':
		s.string()
	default:
		if s.isDigit(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharater(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

// advance counts lines, so newlines inside strings and comments are tracked too.
func (s *scanner) advance() rune {
	if s.source[s.current] == '\n' {
		s.line++
	}
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), literal, s.line))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(ghosterrors.ErrScanUnterminatedString, "")
		return
	}

	// The closing ".
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, string(value))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && s.isDigit(s.peekNext()) {
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	// A digit run only fails to parse on overflow, where ParseFloat yields ±Inf.
	value, _ := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	s.addTokenLiteral(token.NUMBER, value)
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := string(s.source[s.start:s.current])
	if _type, ok := s.reserved(name); ok {
		tokenType = _type
	}
	s.addToken(tokenType)
}

func (s *scanner) reserved(identifier string) (tokenType token.TokenType, ok bool) {
	tokenType, ok = reservedKeywords[identifier]
	return
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharater(c rune) {
	s.reportError(ghosterrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportError(cause error, where string) {
	err := ghosterrors.NewScanError(s.line, cause, where)
	s.errs = append(s.errs, err)
	s.reporter.ReportError(err)
}

var _ Scanner = (*scanner)(nil)
