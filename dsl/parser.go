package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// 颜色与注释都以 # 开头：只有冒号之后的值位置才识别颜色，其余位置的 # 一律是注释。
	dslLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Whitespace", Pattern: `[ \t\r]+`},
			{Name: "Newline", Pattern: `\n+`},
			{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
			{Name: "LineComment", Pattern: `//[^\n]*`},
			{Name: "HashComment", Pattern: `#[^\n]*`},
			{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
			{Name: "Colon", Pattern: `:`, Action: lexer.Push("Value")},
			{Name: "Symbol", Pattern: `[;,]`},
			{Name: "LBrace", Pattern: `{`},
			{Name: "RBrace", Pattern: `}`},
		},
		"Value": {
			{Name: "Whitespace", Pattern: `[ \t\r]+`},
			{Name: "Newline", Pattern: `\n+`},
			{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
			{Name: "LineComment", Pattern: `//[^\n]*`},
			{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`, Action: lexer.Pop()},
			{Name: "Number", Pattern: `[-+]?(?:\d+\.\d+|\d+|\.\d+)(?:px|pt|mm|in|ms|s|x)?`, Action: lexer.Pop()},
			{Name: "String", Pattern: `"(?:\\.|[^"])*"`, Action: lexer.Pop()},
			{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`, Action: lexer.Pop()},
		},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a preset file; it may hold several presets.
type Document struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Presets []*Preset      `parser:"Newline* ( @@ Newline* )*"`
}

// Preset 为一组命名的生成参数。
type Preset struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'preset' @Ident"`
	Entries []*Assignment  `parser:"'{' Newline* ( @@ ( ';' | ',' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value represents a property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Raw 返回值的文本形式（字符串已去掉引号）。
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
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

// Parse parses preset content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses preset content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Find 按名称查找预设；name 为空时返回第一个。
func (d *Document) Find(name string) (*Preset, bool) {
	for _, p := range d.Presets {
		if name == "" || p.Name == name {
			return p, true
		}
	}
	return nil, false
}
