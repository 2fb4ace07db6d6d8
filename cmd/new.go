package main

import (
	"fmt"
	"path/filepath"

	"github.com/krait-lang/krait/project"
	"github.com/krait-lang/krait/std"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run() error {
	if err := project.Scaffold(n.Name, std.Default()); err != nil {
		return err
	}
	fmt.Printf("created %s\n", filepath.Clean(n.Name))
	fmt.Printf("  cd %s && krait build\n", n.Name)
	return nil
}
