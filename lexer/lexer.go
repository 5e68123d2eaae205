package lexer

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
)

const eof = rune(-1)

// New initializes a Lexer that reads tokens from the given source.
func New(in string) *Lexer {
	return &Lexer{
		in:    []rune(in),
		state: lexDefaultState,
		buf:   []rune{},

		line: 1,
		col:  1,
	}
}

// Lexer represents a lexical analyzer. Tokens are produced on demand by
// calling Next.
type Lexer struct {
	in     []rune
	offset int

	state   lexState
	pending []Token
	curr    Token

	buf []rune

	line, col           int
	startLine, startCol int
}

// Next advances the lexer to the next token. It returns false once the input
// is exhausted.
func (lx *Lexer) Next() bool {
	for len(lx.pending) == 0 && lx.state != nil {
		lx.state = lx.state(lx)
	}
	if len(lx.pending) == 0 {
		return false
	}
	lx.curr, lx.pending = lx.pending[0], lx.pending[1:]
	return true
}

// Token returns the token found by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.curr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.pending = append(lx.pending, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	return lx.in[lx.offset]
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}

	r := lx.in[lx.offset]
	lx.offset++

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	lx.startLine, lx.startCol = lx.line, lx.col

	r := lx.next()

	switch {
	case r == eof:
		return nil

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState

	default:
		return lexWord
	}
}

func lexWord(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == eof || isWordBreak(p) {
			break
		}
		lx.next()
	}
	lx.emit(TokenWord)
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// Scan returns all the tokens within the given source, with their positions.
func Scan(in string) []Token {
	tokens := []Token{}

	lx := New(in)
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	return tokens
}

// Tokenize returns the text of every token within the given source. Parens
// are tokens on their own; any other maximal run of non-whitespace
// characters is a single token. Tokenize never fails.
func Tokenize(in string) []string {
	tokens := []string{}

	lx := New(in)
	for lx.Next() {
		tokens = append(tokens, lx.Token().Text())
	}

	return tokens
}
