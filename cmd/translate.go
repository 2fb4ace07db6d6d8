package main

import (
	"fmt"
	"os"

	"github.com/krait-lang/krait/compile"
	"github.com/krait-lang/krait/frontend"
	"github.com/krait-lang/krait/project"
)

type TranslateCmd struct {
	File string `arg:"" type:"existingfile" help:"Krait source file."`
	Out  string `help:"Write the Rust code here instead of stdout." short:"o" type:"path"`
}

func (t *TranslateCmd) Run() error {
	opts := standaloneOptions()
	if t.Out != "" {
		if err := compile.TranslateFile(t.File, t.Out, opts); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", t.File, t.Out)
		return nil
	}

	data, err := os.ReadFile(t.File)
	if err != nil {
		return err
	}
	rust, err := compile.Translate(t.File, string(data), opts)
	if err != nil {
		return err
	}
	fmt.Print(rust)
	return nil
}

type ProjectCmd struct {
	In  string `arg:"" type:"existingdir" help:"Directory holding .kr files."`
	Out string `arg:"" type:"path" help:"Directory for the generated .rs files."`
}

func (p *ProjectCmd) Run() error {
	results, err := project.TranslateDir(p.In, p.Out, standaloneOptions())
	if err != nil {
		return err
	}
	printResults(results)
	if failed := project.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(results))
	}
	return nil
}

// standaloneOptions is used outside a project: default registry, address
// from the environment.
func standaloneOptions() compile.Options {
	server := frontend.DefaultServer()
	return compile.Options{Host: server.Host, Port: server.Port}
}

func printResults(results []project.FileResult) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(os.Stderr, "%v\n", r.Err)
		case r.Skipped:
			fmt.Printf("%s (unchanged)\n", r.In)
		default:
			fmt.Printf("%s -> %s\n", r.In, r.Out)
		}
	}
}
