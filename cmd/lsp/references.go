package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) References(p *lsp.ReferenceParams) ([]lsp.Location, error) {
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

	var locations []lsp.Location
	for _, span := range idx.references(sym) {
		if !p.Context.IncludeDeclaration && span == sym.Decl {
			continue
		}
		locations = append(locations, lsp.Location{URI: uri, Range: span.ToRange()})
	}
	return locations, nil
}
