package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/frontend/lexer"
)

func (h *Handler) Complete(p *lsp.CompletionParams) (*lsp.CompletionList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := h.index(p.TextDocument.URI)
	if idx == nil {
		return nil, nil
	}
	return &lsp.CompletionList{
		IsIncomplete: false,
		Items:        idx.completions(p.Position),
	}, nil
}

// completions offers every symbol visible at pos, nearest first, then the
// keywords.
func (idx *symbolIndex) completions(pos lsp.Position) []lsp.CompletionItem {
	line, col := pos.Line+1, pos.Character+1

	var list []lsp.CompletionItem
	added := make(map[string]struct{})
	for i := len(idx.symbols) - 1; i >= 0; i-- {
		sym := idx.symbols[i]
		if _, exists := added[sym.Name]; exists || !sym.visible(line, col) {
			continue
		}
		added[sym.Name] = struct{}{}
		list = append(list, lsp.CompletionItem{
			Label:  sym.Name,
			Kind:   sym.Kind,
			Detail: sym.Detail,
		})
	}
	for _, kw := range lexer.Keywords() {
		if _, exists := added[kw]; exists {
			continue
		}
		list = append(list, lsp.CompletionItem{
			Label: kw,
			Kind:  lsp.CompletionItemKindKeyword,
		})
	}
	return list
}
