package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/common"
)

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path := common.URIToFilePath(p.TextDocument.URI)
	h.fileCache[path] = p.TextDocument.Text
	h.handleDiagnostics(path)
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(p.ContentChanges) == 0 {
		return nil
	}
	path := common.URIToFilePath(p.TextDocument.URI)
	h.fileCache[path] = p.ContentChanges[0].Text
	h.handleDiagnostics(path)
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path := common.URIToFilePath(p.TextDocument.URI)
	delete(h.fileCache, path)
	delete(h.files, path)
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path := common.URIToFilePath(p.TextDocument.URI)
	if p.Text != nil {
		h.fileCache[path] = *p.Text
	}
	h.handleDiagnostics(path)
	return nil
}
