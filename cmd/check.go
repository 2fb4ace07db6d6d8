package main

import (
	"fmt"
	"os"
	"strings"

	protocol "github.com/gluax-lang/lsp"

	codegen "github.com/krait-lang/krait/backend"
	"github.com/krait-lang/krait/project"
)

type CheckCmd struct {
	Path string `help:"A .kr file, or a directory inside a project." short:"p" default:"."`
}

func (c *CheckCmd) Run() error {
	files, err := c.analyze()
	if err != nil {
		return err
	}

	errorCount := 0
	for _, f := range files {
		for _, diag := range f.Diags {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", f.Path,
				diag.Range.Start.Line+1, diag.Range.Start.Character+1,
				severityName(diag.Severity), diag.Message)
		}
		if f.HasErrors() {
			errorCount++
			continue
		}
		caps := codegen.Capabilities(f.Ast)
		if len(caps) == 0 {
			fmt.Printf("%s: ok\n", f.Path)
		} else {
			fmt.Printf("%s: ok (uses %s)\n", f.Path, strings.Join(caps, ", "))
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d file(s) with errors", errorCount)
	}
	return nil
}

func (c *CheckCmd) analyze() ([]*project.File, error) {
	info, err := os.Stat(c.Path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		code, err := os.ReadFile(c.Path)
		if err != nil {
			return nil, err
		}
		return []*project.File{project.AnalyzeFile(c.Path, string(code))}, nil
	}
	p, err := loadProject(c.Path)
	if err != nil {
		return nil, err
	}
	return p.Analyze()
}

func severityName(s *protocol.DiagnosticSeverity) string {
	if s != nil && *s == protocol.DiagnosticSeverityWarning {
		return "warning"
	}
	return "error"
}
