package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

type BuildOptions struct {
	// run `cargo build --release` after translating, when Cargo.toml exists
	Cargo  bool
	Stdout io.Writer
	Stderr io.Writer
}

// Build translates every source and, if asked, compiles the result with
// cargo. Nothing is written unless every file analyses cleanly.
func (p *Project) Build(ctx context.Context, opts BuildOptions) ([]FileResult, error) {
	files, err := p.Analyze()
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, f := range files {
		if err := f.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cg := p.CodegenOptions()
	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		res := FileResult{In: f.Path, Out: p.OutPath(f.Path)}
		if err := writeRust(res.Out, f, cg); err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if !opts.Cargo {
		return results, nil
	}
	if _, err := os.Stat(filepath.Join(p.Root, CargoFile)); err != nil {
		log.Printf("no %s in %s, skipping cargo", CargoFile, p.Root)
		return results, nil
	}
	return results, runCargo(ctx, p.Root, opts)
}

func runCargo(ctx context.Context, dir string, opts BuildOptions) error {
	log.Printf("running cargo build --release in %s", dir)
	cmd := exec.CommandContext(ctx, "cargo", "build", "--release")
	cmd.Dir = dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo build failed: %w", err)
	}
	return nil
}
