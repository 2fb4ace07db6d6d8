package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/krait-lang/krait/project"
	"github.com/krait-lang/krait/std"
)

type LibsCmd struct {
	Path string `help:"Include the libraries declared by the project here." short:"p" default:"."`
}

func (l *LibsCmd) Run() error {
	reg := std.Default()
	if p, err := loadProject(l.Path); err == nil {
		reg = p.Config.Registry()
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tCRATE\tFEATURES")
	for _, key := range reg.Keys() {
		lib, _ := reg.Get(key)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lib.Key, lib.Name, lib.Crate, strings.Join(reg.Features([]string{key}), ", "))
	}
	return tw.Flush()
}
