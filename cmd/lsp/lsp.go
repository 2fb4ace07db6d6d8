package lsp

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	protocol "github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/common"
	"github.com/krait-lang/krait/project"
)

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	mu sync.Mutex
	// open buffers keyed by absolute path
	fileCache map[string]string
	workspace string
	// latest analysis of every file we published diagnostics for
	files map[string]*project.File
}

func NewHandler() *Handler {
	h := &Handler{
		fileCache: make(map[string]string),
		files:     make(map[string]*project.File),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		h.workspace = common.URIToFilePath((*p.WorkspaceFolders)[0].URI)
		log.Printf("root: %s", h.workspace)
	}
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		DefinitionProvider: true,
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// analyze re-checks path. Inside a project every source is re-analysed
// with the open buffers overlaid, otherwise just the one file.
func (h *Handler) analyze(path string) []*project.File {
	root, ok := project.Find(filepath.Dir(path))
	if ok {
		p, err := project.Load(root, h.fileCache)
		if err != nil {
			log.Printf("error loading project: %v", err)
		} else if files, err := p.Analyze(); err != nil {
			log.Printf("error analyzing project: %v", err)
		} else if containsPath(files, path) {
			return files
		}
	}
	return []*project.File{project.AnalyzeFile(path, h.fileCache[path])}
}

func containsPath(files []*project.File, path string) bool {
	for _, f := range files {
		if common.FilePathClean(f.Path) == common.FilePathClean(path) {
			return true
		}
	}
	return false
}

func (h *Handler) handleDiagnostics(path string) {
	for _, f := range h.analyze(path) {
		h.files[f.Path] = f
		diags := f.Diags
		if diags == nil {
			diags = []protocol.Diagnostic{}
		}
		h.PublishDiagnostics(common.FilePathToURI(f.Path), diags)
	}
}

// file returns the latest analysis of the document behind uri.
func (h *Handler) file(uri string) *project.File {
	path := common.URIToFilePath(uri)
	if f, ok := h.files[path]; ok {
		return f
	}
	text, ok := h.fileCache[path]
	if !ok {
		return nil
	}
	f := project.AnalyzeFile(path, text)
	h.files[path] = f
	return f
}
