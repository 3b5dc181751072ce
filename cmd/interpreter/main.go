// Command interpreter is the CLI host for the directive language
// (§6/§6 NEW of SPEC_FULL.md): it loads a program from a file or an
// inline -c string, binds the trailing command-line arguments as the
// language's `args` list, evaluates it, and writes the interleaved
// output to stdout. Parse and evaluation errors go to stderr with a
// non-zero exit code.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/Frawstcrabs/IndividualProject/internal/cache"
	"github.com/Frawstcrabs/IndividualProject/pkg/eval"
	"github.com/Frawstcrabs/IndividualProject/pkg/parser"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
	"github.com/Frawstcrabs/IndividualProject/pkg/visitors"
)

func main() {
	app := &cli.App{
		Name:  "interpreter",
		Usage: "run programs written in the brace-directive language",
		Flags: runFlags(),
		Action: func(c *cli.Context) error {
			return runAction(c)
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run a program file or inline source",
				Flags:  runFlags(),
				Action: runAction,
			},
			{
				Name:  "docs",
				Usage: "print a man page for this CLI",
				Action: func(c *cli.Context) error {
					man, err := c.App.ToMan()
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, man)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "code", Aliases: []string{"c"}, Usage: "run this source string instead of reading a file"},
		&cli.BoolFlag{Name: "watch", Usage: "re-run on every change to the source file"},
		&cli.BoolFlag{Name: "dump-ast", Usage: "print the parsed AST to stderr before evaluating"},
	}
}

func runAction(c *cli.Context) error {
	code := c.String("code")
	var path string
	var progArgs []string

	if code == "" {
		if c.NArg() < 1 {
			return fmt.Errorf("expected a program path (or -c <source>)")
		}
		path = c.Args().Get(0)
		progArgs = c.Args().Slice()[1:]
	} else {
		progArgs = c.Args().Slice()
	}

	dumpAST := c.Bool("dump-ast")

	if c.Bool("watch") {
		if path == "" {
			return fmt.Errorf("--watch requires a program path, not -c")
		}
		return watchAndRun(path, progArgs, dumpAST, c.App.Writer, c.App.ErrWriter)
	}

	src, filename, err := loadSource(path, code)
	if err != nil {
		return err
	}
	return runOnce(filename, src, progArgs, dumpAST, c.App.Writer, c.App.ErrWriter)
}

func loadSource(path, code string) (src, filename string, err error) {
	if code != "" {
		return code, "<code>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), path, nil
}

// runOnce parses and evaluates one program, writing rendered output to
// out and (with --dump-ast) the AST dump to errOut first.
func runOnce(filename, src string, progArgs []string, dumpAST bool, out, errOut io.Writer) error {
	prog, err := parser.Parse(filename, src)
	if err != nil {
		return err
	}

	if dumpAST {
		dp := visitors.NewDebugPrinter()
		prog.Accept(dp)
		fmt.Fprint(errOut, dp.String())
	}

	ev := eval.New(out)
	items := make([]value.Value, len(progArgs))
	for i, a := range progArgs {
		items[i] = value.Str(a)
	}
	ev.Global().Declare("args", value.FromList(value.NewList(items...)))

	return ev.Run(prog)
}

// watchAndRun re-runs the program each time path's content changes,
// debounced through a WatchGuard so an editor's multi-event save only
// triggers one re-run.
func watchAndRun(path string, progArgs []string, dumpAST bool, out, errOut io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	guard := cache.New()
	runIt := func() {
		src, filename, err := loadSource(path, "")
		if err != nil {
			log.Println(err)
			return
		}
		if err := runOnce(filename, src, progArgs, dumpAST, out, errOut); err != nil {
			log.Println(err)
		}
	}

	runIt()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			changed, err := guard.Changed(path)
			if err != nil || !changed {
				continue
			}
			log.Printf("[watch] re-running %s (changed)", path)
			runIt()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}
