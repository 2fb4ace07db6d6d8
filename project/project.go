// Package project works on a Krait project directory: krait.toml, the
// Krait sources under src and the generated Rust under out.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	codegen "github.com/krait-lang/krait/backend"
	"github.com/krait-lang/krait/common"
	"github.com/krait-lang/krait/frontend"
)

const (
	ConfigFile = "krait.toml"
	CargoFile  = "Cargo.toml"
	SourceExt  = ".kr"
	RustExt    = ".rs"
)

type Project struct {
	Root   string
	Config frontend.KraitToml

	// unsaved editor buffers, keyed by cleaned absolute path
	overrides map[string]string
	// content hash of each source at its last translation
	hashes map[string]string
}

// Load reads krait.toml from root. overrides replaces on-disk file content
// for the given paths; the language server passes open buffers here.
func Load(root string, overrides map[string]string) (*Project, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	p := &Project{
		Root:      root,
		overrides: make(map[string]string),
		hashes:    make(map[string]string),
	}
	for path, content := range overrides {
		if path != "" {
			p.overrides[common.FilePathClean(path)] = content
		}
	}

	content, err := p.loadFileContent(filepath.Join(root, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ConfigFile, err)
	}
	cfg, err := frontend.HandleKraitToml(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ConfigFile, err)
	}
	p.Config = cfg
	return p, nil
}

// Find walks up from dir to the nearest directory holding krait.toml.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (p *Project) SrcDir() string {
	return filepath.Join(p.Root, p.Config.Src)
}

func (p *Project) OutDir() string {
	return filepath.Join(p.Root, p.Config.Out)
}

// OutPath maps a source file under SrcDir to its .rs file under OutDir.
func (p *Project) OutPath(src string) string {
	rel, err := filepath.Rel(p.SrcDir(), src)
	if err != nil {
		rel = filepath.Base(src)
	}
	return filepath.Join(p.OutDir(), common.SwapExt(rel, RustExt))
}

// CodegenOptions carries the project's registry and server address into
// the generator.
func (p *Project) CodegenOptions() codegen.Options {
	return codegen.Options{
		Registry: p.Config.Registry(),
		Host:     p.Config.Server.Host,
		Port:     p.Config.Server.Port,
	}
}

// loadFileContent prefers an override, then the file on disk.
func (p *Project) loadFileContent(path string) (string, error) {
	path = common.FilePathClean(path)
	if content, ok := p.overrides[path]; ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Sources lists every .kr file under SrcDir, sorted.
func (p *Project) Sources() ([]string, error) {
	return findSources(p.SrcDir())
}

func findSources(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == SourceExt {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// WalkDir visits in lexical order
	return out, nil
}
