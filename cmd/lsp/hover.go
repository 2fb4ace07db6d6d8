package lsp

import (
	"fmt"

	"github.com/gluax-lang/lsp"
)

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := h.index(p.TextDocument.URI)
	if idx == nil {
		return nil, nil
	}

	var code string
	if sym := idx.symbolAt(p.Position); sym != nil {
		code = sym.Detail
	} else if tok := idx.tokenAt(p.Position); tok != nil {
		span := tok.Span()
		for routeSpan, text := range idx.routes {
			if routeSpan.LineStart == span.LineStart && routeSpan.Contains(span.LineStart, span.ColumnStart) {
				code = text
				break
			}
		}
	}
	if code == "" {
		return nil, nil
	}

	return &lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  "markdown",
			Value: fmt.Sprintf("```krait\n%s\n```\n", code),
		},
	}, nil
}

func (h *Handler) index(uri string) *symbolIndex {
	f := h.file(uri)
	if f == nil {
		return nil
	}
	return buildIndex(&fileView{path: f.Path, code: f.Code, tree: f.Ast})
}
