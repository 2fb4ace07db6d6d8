package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) Definition(p *lsp.DefinitionParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := p.TextDocument.URI
	idx := h.index(uri)
	if idx == nil {
		return nil, nil
	}
	sym := idx.symbolAt(p.Position)
	if sym == nil {
		return nil, nil
	}
	return []lsp.Location{{URI: uri, Range: sym.Decl.ToRange()}}, nil
}
