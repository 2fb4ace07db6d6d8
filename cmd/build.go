package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/krait-lang/krait/api"
	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/project"
)

type BuildCmd struct {
	Path    string `help:"Path to the project directory." short:"p" default:"."`
	NoCargo bool   `help:"Only translate, do not run cargo." name:"no-cargo"`
}

func (b *BuildCmd) Run() error {
	p, err := loadProject(b.Path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := p.Build(ctx, project.BuildOptions{
		Cargo:  !b.NoCargo,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	printResults(results)
	if err != nil {
		return err
	}

	routes, err := projectRoutes(p)
	if err != nil {
		return err
	}
	fmt.Println(api.NewInfo(routes).Describe())
	fmt.Print(api.NewStats(routes).Format(p.Config.Server.URL()))
	return nil
}

// loadProject finds the project containing path.
func loadProject(path string) (*project.Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	root, ok := project.Find(absPath)
	if !ok {
		return nil, fmt.Errorf("no %s found in %s or its parents", project.ConfigFile, absPath)
	}
	return project.Load(root, nil)
}

func projectRoutes(p *project.Project) ([]*ast.Route, error) {
	files, err := p.Analyze()
	if err != nil {
		return nil, err
	}
	var routes []*ast.Route
	for _, f := range files {
		if f.Ast != nil {
			routes = append(routes, f.Ast.Routes()...)
		}
	}
	return routes, nil
}
