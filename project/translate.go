package project

import (
	"fmt"
	"os"
	"path/filepath"

	codegen "github.com/krait-lang/krait/backend"
	"github.com/krait-lang/krait/common"
	"github.com/krait-lang/krait/compile"
)

// FileResult reports what happened to one source file.
type FileResult struct {
	In, Out string
	Err     error
	Skipped bool // unchanged since the last translation
}

// TranslateDir translates every .kr file under inDir into a .rs file at the
// same relative path under outDir. A failing file does not stop the others;
// its error is in its FileResult.
func TranslateDir(inDir, outDir string, opts codegen.Options) ([]FileResult, error) {
	paths, err := findSources(inDir)
	if err != nil {
		return nil, err
	}
	results := make([]FileResult, 0, len(paths))
	for _, in := range paths {
		rel, err := filepath.Rel(inDir, in)
		if err != nil {
			return nil, err
		}
		out := filepath.Join(outDir, common.SwapExt(rel, RustExt))
		results = append(results, FileResult{
			In:  in,
			Out: out,
			Err: compile.TranslateFile(in, out, opts),
		})
	}
	return results, nil
}

// Failed returns the results that carry an error.
func Failed(results []FileResult) []FileResult {
	var out []FileResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Sync translates the sources whose content changed since the previous
// Sync; the first call translates everything.
func (p *Project) Sync() ([]FileResult, error) {
	files, err := p.Analyze()
	if err != nil {
		return nil, err
	}
	opts := p.CodegenOptions()

	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		res := FileResult{In: f.Path, Out: p.OutPath(f.Path)}
		hash := common.SHA256Hex(f.Code)
		switch {
		case p.hashes[f.Path] == hash:
			res.Skipped = true
		case f.HasErrors():
			res.Err = f.Err()
			delete(p.hashes, f.Path)
		default:
			res.Err = writeRust(res.Out, f, opts)
			if res.Err == nil {
				p.hashes[f.Path] = hash
			}
		}
		results = append(results, res)
	}
	return results, nil
}

func writeRust(out string, f *File, opts codegen.Options) error {
	opts.Source = filepath.Base(f.Path)
	rust := codegen.Generate(f.Ast, opts)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(rust), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}
