package rascal

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line      int
	lineStart int
	start     int
	current   int
	source    []rune
	tokens    []*Token
}

// NewScanner creates a new Rascal token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The first character that does not start a token aborts the scan.
func (scanner *Scanner) Scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		if err := scanner.scanToken(); err != nil {
			return nil, err
		}
	}
	scanner.start = scanner.current
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", scanner.line, scanner.column()),
	)
	return scanner.tokens, nil
}

func (scanner *Scanner) scanToken() error {
	switch r := scanner.advance(); r {
	// Whitespaces
	case ' ', '\r', '\t':
	case '\n':
		scanner.newline()
	// Single character tokens
	case '(':
		scanner.addToken(L_PAREN)
	case ')':
		scanner.addToken(R_PAREN)
	case ',':
		scanner.addToken(COMMA)
	case ':':
		scanner.addToken(COLON)
	case ';':
		scanner.addToken(SEMICOLON)
	// Double character tokens
	case '-':
		if scanner.match('=') {
			scanner.addToken(MINUS_EQUAL)
		} else if scanner.match('>') {
			scanner.addToken(ARROW)
		} else {
			scanner.addToken(MINUS)
		}
	case '+':
		scanner.addEither('=', PLUS_EQUAL, PLUS)
	case '*':
		scanner.addEither('=', STAR_EQUAL, STAR)
	case '!':
		scanner.addEither('=', BANG_EQUAL, BANG)
	case '=':
		scanner.addEither('=', EQUAL_EQUAL, EQUAL)
	case '<':
		scanner.addEither('=', LESS_EQUAL, LESS)
	case '>':
		scanner.addEither('=', GREATER_EQUAL, GREATER)
	// Long lexemes
	case '/':
		if scanner.match('/') {
			// keep the '\n' so line counting stays in one place
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		} else if scanner.match('*') {
			return scanner.scanMultilineComment()
		} else {
			scanner.addEither('=', SLASH_EQUAL, SLASH)
		}
	// Literals
	case '"':
		return scanner.scanString()
	default:
		if isDigit(r) {
			scanner.scanNumber()
		} else if isBeginIdent(r) {
			scanner.scanIdentifier()
		} else {
			return NewScanError(scanner.line, scanner.column(), "Unexpected character.")
		}
	}
	return nil
}

// scanString keeps the quotes and escape sequences in the lexeme, unescaping
// belongs to whoever consumes the literal.
func (scanner *Scanner) scanString() error {
	line, column := scanner.line, scanner.column()
	for scanner.peek() != '"' && scanner.hasNext() {
		switch scanner.advance() {
		case '\\':
			if scanner.hasNext() {
				if scanner.advance() == '\n' {
					scanner.newline()
				}
			}
		case '\n':
			scanner.newline()
		}
	}

	if !scanner.hasNext() {
		return NewScanError(line, column, "Unterminated string.")
	}
	// consume '"'
	scanner.advance()
	scanner.addTokenAt(STRING, line, column)
	return nil
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.matchSuffix()
	scanner.addToken(NUMBER)
}

// matchSuffix consumes a numeric type suffix when one follows the digits and
// is not itself the prefix of a longer identifier.
func (scanner *Scanner) matchSuffix() {
	for _, suffix := range numSuffixes {
		end := scanner.current + len(suffix)
		if end > len(scanner.source) {
			continue
		}
		if string(scanner.source[scanner.current:end]) != suffix {
			continue
		}
		if end < len(scanner.source) && isAlphanumeric(scanner.source[end]) {
			continue
		}
		scanner.current = end
		return
	}
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENT)
	}
}

func (scanner *Scanner) scanMultilineComment() error {
	line, column := scanner.line, scanner.column()
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			if scanner.advance() == '\n' {
				scanner.newline()
			}
		}
		if !scanner.hasNext() {
			return NewScanError(line, column, "Unterminated multiline comment.")
		}
		scanner.advance()
		if scanner.match('/') {
			return nil
		}
	}
}

// addEither adds `matched` when the next rune is `expected`, `otherwise` if not.
func (scanner *Scanner) addEither(expected rune, matched, otherwise TokenType) {
	if scanner.match(expected) {
		scanner.addToken(matched)
	} else {
		scanner.addToken(otherwise)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	scanner.addTokenAt(typ, scanner.line, scanner.column())
}

func (scanner *Scanner) addTokenAt(typ TokenType, line int, column int) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme, line, column))
}

// column returns the 1-based column of `start` on the current line
func (scanner *Scanner) column() int {
	return scanner.start - scanner.lineStart + 1
}

func (scanner *Scanner) newline() {
	scanner.line++
	scanner.lineStart = scanner.current
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}

// isBeginIdent only accepts ASCII letters, identifiers are [A-Za-z_][A-Za-z0-9_]*
func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
