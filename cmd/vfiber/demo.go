package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vfiber/internal/demo"
	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/internal/snapshot"
	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/host/memhost"
	"github.com/vango-dev/vfiber/pkg/sched"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

type demoOptions struct {
	app    string
	units  int
	clicks int
	tree   bool

	snapshot string
	store    snapshot.Store
}

func demoCmd() *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demo component headlessly",
		Long: `Render a demo component into an in-memory document.

Work is sliced with a fixed number of units per slice, so the output shows
how a pass yields and resumes before it commits. After the first commit
the demo simulates user input and prints every following commit.

Examples:
  vfiber demo
  vfiber demo --units 1 --clicks 3
  vfiber demo --app todo --tree
  vfiber demo --snapshot out/
  vfiber demo --snapshot s3://renders/ci`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("units") {
				opts.units = cfg.Scheduler.Units
			}
			if opts.snapshot == "" {
				opts.snapshot = cfg.Snapshot.Target
			}
			if opts.snapshot != "" {
				opts.store, err = snapshot.Open(opts.snapshot, snapshot.S3Options{
					Region:   cfg.Snapshot.Region,
					Endpoint: cfg.Snapshot.Endpoint,
				})
				if err != nil {
					return errors.Newf(errors.CategoryUsage, "%v", err)
				}
			}
			logger := cfg.Log.Logger(cmd.ErrOrStderr())
			return runDemo(cmd.Context(), cmd.OutOrStdout(), opts, fiber.WithLogger(logger))
		},
	}

	cmd.Flags().StringVarP(&opts.app, "app", "a", "counter", "Demo component ("+strings.Join(demo.Names(), ", ")+")")
	cmd.Flags().IntVarP(&opts.units, "units", "u", 0, "Units of work per slice (default from config)")
	cmd.Flags().IntVarP(&opts.clicks, "clicks", "n", 2, "Simulated user interactions")
	cmd.Flags().BoolVarP(&opts.tree, "tree", "t", false, "Print the fiber tree after each commit")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Store each commit's HTML in a directory or s3://bucket/prefix")

	return cmd
}

func runDemo(ctx context.Context, w io.Writer, opts demoOptions, engineOpts ...fiber.Option) error {
	comp, ok := demo.Lookup(opts.app)
	if !ok {
		return errors.Newf(errors.CategoryUsage, "unknown demo %q (have %s)", opts.app, strings.Join(demo.Names(), ", "))
	}
	if opts.units <= 0 {
		return errors.Newf(errors.CategoryUsage, "--units must be positive")
	}

	doc := memhost.New()
	root := doc.Container("body")
	m := sched.NewManual()

	commits := 0
	var snapErr error
	var engine *fiber.Engine
	engineOpts = append(engineOpts, fiber.WithCommitHook(func(r *fiber.Fiber) {
		commits++
		st := engine.Stats()
		success(w, "commit %d: %d host ops", commits, doc.Count())
		info(w, "%s", root.InnerHTML())
		info(w, "units=%d slices=%d yields=%d discarded=%d", st.Units, st.Slices, st.Yields, st.Discarded)
		if opts.tree {
			printTree(w, r)
		}
		if opts.store != nil && snapErr == nil {
			snapErr = opts.store.Put(ctx, snapshot.Key(opts.app, commits), []byte(root.InnerHTML()))
		}
		doc.Reset()
	}))
	engine = fiber.New(doc, m, engineOpts...)

	if err := engine.Render(vdom.CreateElement(comp, nil), root); err != nil {
		return err
	}
	if err := drain(w, engine, m, opts.units); err != nil {
		return err
	}

	settle := func() error { return drain(w, engine, m, opts.units) }
	for i := 0; i < opts.clicks; i++ {
		if err := interact(doc, root, opts.app, i, settle); err != nil {
			return err
		}
		if err := settle(); err != nil {
			return err
		}
	}
	if snapErr != nil {
		return fmt.Errorf("snapshot: %w", snapErr)
	}
	if opts.store != nil {
		success(w, "stored %d snapshots in %s", commits, opts.snapshot)
	}
	return nil
}

// drain runs slices until no work is queued, reporting each yield.
func drain(w io.Writer, e *fiber.Engine, m *sched.Manual, units int) error {
	for m.RunSlice(units) {
		if e.Pending() {
			info(w, "yield after slice %d", m.Slices())
		}
	}
	if e.Pending() {
		return fmt.Errorf("render pass did not finish")
	}
	return nil
}

// interact simulates the i-th user interaction for app. settle runs the
// work started by one event before the next is fired.
func interact(doc *memhost.Document, root *memhost.Node, app string, i int, settle func() error) error {
	switch app {
	case "todo":
		if err := doc.Fire(root.Find("input"), "input", &vdom.Event{Value: fmt.Sprintf("task %d", i+1)}); err != nil {
			return err
		}
		if err := settle(); err != nil {
			return err
		}
		for _, b := range root.FindAll("button") {
			if b.Props["class"] == "add" {
				return doc.Fire(b, "click", nil)
			}
		}
	default:
		for _, b := range root.FindAll("button") {
			if b.Props["class"] == "inc" {
				return doc.Fire(b, "click", nil)
			}
		}
	}
	return fmt.Errorf("demo %s has nothing to interact with", app)
}

func printTree(w io.Writer, root *fiber.Fiber) {
	root.Walk(func(f *fiber.Fiber, depth int) {
		label := f.Tag()
		switch {
		case f.Parent() == nil:
			label = "(root)"
		case f.Kind() == vdom.KindText:
			label = fmt.Sprintf("%q", vdom.PropToString(f.Props()[vdom.NodeValueKey]))
		case f.Kind() == vdom.KindComponent:
			label = "<component>"
		}
		fmt.Fprintf(w, "    %s%s\n", strings.Repeat("  ", depth), label)
	})
}
