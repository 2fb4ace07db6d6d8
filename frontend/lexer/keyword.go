package lexer

import "github.com/krait-lang/krait/frontend/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwFunc
	KwEnd
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwTry
	KwCatch
	KwRaise
	KwRoute
	KwJson
	KwAuto
	KwErrorCode
	KwPublic
	KwPrivate
	KwImport
	KwFrom
	// types
	KwInt
	KwFloat
	KwDouble
	KwTxt
	KwBool
	// HTTP methods
	KwGet
	KwPost
	KwPut
	KwDelete
	// boolean connectives
	KwAnd
	KwOr
	KwNot
)

var keywordTable = map[string]Keyword{
	"func":       KwFunc,
	"end":        KwEnd,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"try":        KwTry,
	"catch":      KwCatch,
	"raise":      KwRaise,
	"route":      KwRoute,
	"json":       KwJson,
	"auto":       KwAuto,
	"error_code": KwErrorCode,
	"public":     KwPublic,
	"private":    KwPrivate,
	"import":     KwImport,
	"from":       KwFrom,
	"int":        KwInt,
	"float":      KwFloat,
	"double":     KwDouble,
	"txt":        KwTxt,
	"bool":       KwBool,
	"get":        KwGet,
	"post":       KwPost,
	"put":        KwPut,
	"delete":     KwDelete,
	"and":        KwAnd,
	"or":         KwOr,
	"not":        KwNot,
}

var keywordNames = func() []string {
	var max Keyword
	for _, kw := range keywordTable {
		if kw > max {
			max = kw
		}
	}
	names := make([]string, max+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsKeyword reports whether lit is reserved.
func IsKeyword(lit string) bool {
	_, ok := keywordTable[lit]
	return ok
}

// Keywords returns every reserved word, indexed by Keyword.
func Keywords() []string {
	return keywordNames[1:]
}

func (k Keyword) String() string {
	if k <= 0 || int(k) >= len(keywordNames) {
		return "<invalid keyword>"
	}
	return keywordNames[k]
}

// IsType reports whether the keyword names a data type.
func (k Keyword) IsType() bool {
	switch k {
	case KwInt, KwFloat, KwDouble, KwTxt, KwBool, KwAuto:
		return true
	}
	return false
}

// IsMethod reports whether the keyword names an HTTP method.
func (k Keyword) IsMethod() bool {
	switch k {
	case KwGet, KwPost, KwPut, KwDelete:
		return true
	}
	return false
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) String() string {
	return t.Keyword.String()
}

func (t TokKeyword) Is(other string) bool {
	kw, ok := keywordTable[other]
	return ok && kw == t.Keyword
}

func (t TokKeyword) AsString() string {
	return t.String()
}

func NewTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
