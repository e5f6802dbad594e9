package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	frontLexer = lexer.MustSimple([]lexer.SimpleRule{
		// 只有位于行首或空白之后的 # 才开始注释；词内的 #（如 C#）属于该词。
		{Name: "Whitespace", Pattern: `[ \t\r]+(?:#[^\n]*)?`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `[-+]?\d[^\s\[\],:"]*`},
		// 键允许包含 .，如 og.title；Values 会把它展开为嵌套表。
		{Name: "Ident", Pattern: `[A-Za-z_][^\s\[\],:"]*`},
		{Name: "Punct", Pattern: `[][,:]`},
		{Name: "Other", Pattern: `[^\s\[\],:"]+`},
	})

	newlineTokenType = mustTokenType("Newline")
	punctTokenType   = mustTokenType("Punct")

	frontParser = participle.MustBuild[FrontMatter](
		participle.Lexer(frontLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// FrontMatter is the root AST node of a document's metadata block.
type FrontMatter struct {
	Entries []*Entry `parser:"Newline* ( @@ Newline* )*"`
}

// Entry is a single `key: value` line.
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@?"`
}

// Value holds a quoted string, an array or bare text up to the end of the line.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Array  *ArrayValue    `parser:"| @@"`
	Bare   *BareText      `parser:"| @@"`
}

// ArrayValue captures `[a, "b", c]`; items are separated by commas or newlines.
type ArrayValue struct {
	Items []*ArrayItem `parser:"'[' Newline* ( @@ Newline* ','? Newline* )* ']'"`
}

// ArrayItem is one element of an array.
type ArrayItem struct {
	String *StringLiteral `parser:"  @String"`
	Bare   *ItemText      `parser:"| @@"`
}

// BareText captures unquoted text up to the end of the line.
type BareText struct {
	Text string
}

// Parse implements participle.Parseable.
func (b *BareText) Parse(lex *lexer.PeekingLexer) error {
	text, ok := captureRun(lex, func(tok *lexer.Token) bool {
		return tok.Type == newlineTokenType
	})
	if !ok {
		return participle.NextMatch
	}
	b.Text = text
	return nil
}

// ItemText captures unquoted text inside an array, stopping at `,` or `]`.
type ItemText struct {
	Text string
}

// Parse implements participle.Parseable.
func (i *ItemText) Parse(lex *lexer.PeekingLexer) error {
	text, ok := captureRun(lex, func(tok *lexer.Token) bool {
		if tok.Type == newlineTokenType {
			return true
		}
		return tok.Type == punctTokenType && (tok.Value == "," || tok.Value == "]" || tok.Value == "[")
	})
	if !ok {
		return participle.NextMatch
	}
	i.Text = text
	return nil
}

// captureRun 连续读取 token 直到 stop 为真，并按源码偏移还原 token 间的空白。
func captureRun(lex *lexer.PeekingLexer, stop func(*lexer.Token) bool) (string, bool) {
	var sb strings.Builder
	end := -1
	for {
		tok := lex.Peek()
		if tok.EOF() || stop(tok) {
			break
		}
		tok = lex.Next()
		if end >= 0 && tok.Pos.Offset > end {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Value)
		end = tok.Pos.Offset + len(tok.Value)
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses front matter content from an io.Reader.
func Parse(r io.Reader) (*FrontMatter, error) {
	return frontParser.Parse("", r)
}

// ParseString parses front matter content from a string.
func ParseString(input string) (*FrontMatter, error) {
	return frontParser.ParseString("", input)
}

func mustTokenType(name string) lexer.TokenType {
	symbols := frontLexer.Symbols()
	tt, ok := symbols[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
