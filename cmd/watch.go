package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/krait-lang/krait/project"
	"github.com/krait-lang/krait/watcher"
)

type WatchCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (w *WatchCmd) Run() error {
	p, err := loadProject(w.Path)
	if err != nil {
		return err
	}
	if err := w.sync(p); err != nil {
		return err
	}

	wt, err := watcher.New(watcher.DefaultDelay, func(path string) {
		if filepath.Ext(path) != project.SourceExt {
			return
		}
		log.Printf("changed: %s", path)
		if err := w.sync(p); err != nil {
			log.Printf("sync failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	defer wt.Close()

	if err := wt.AddTree(p.SrcDir()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("watching %s (ctrl+c to stop)\n", p.SrcDir())
	err = wt.Watch(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (w *WatchCmd) sync(p *project.Project) error {
	results, err := p.Sync()
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.Skipped {
			printResults([]project.FileResult{r})
		}
	}
	return nil
}
