package instance

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Free-text headers (name, comment) run to the end of the line and are
// lexed as a single Text token before keys are considered.
var instanceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Text", Pattern: `(?i:NOMBRE|NAME|COMENTARIO|COMMENT)[ \t]*:[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z_0-9]*`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Punct", Pattern: `[(),:]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

type document struct {
	Entries []*entry `@@*`
}

type entry struct {
	Text    *string  `  @Text`
	Section *section `| @@`
}

// section is either a count ("VERTICES : 4") or an edge list that may be
// empty. Both captures are optional and sequential; build rejects a section
// carrying the wrong one.
type section struct {
	Pos   lexer.Position
	Key   string      `@Ident ":"`
	Count *int        `@Number?`
	Edges []*edgeLine `@@*`
}

type edgeLine struct {
	Pos    lexer.Position
	From   int     `"(" @Number ","`
	To     int     `@Number ")" ","?`
	Label  string  `@Ident?`
	Weight float64 `@Number`
}

var parser = participle.MustBuild[document](
	participle.Lexer(instanceLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
