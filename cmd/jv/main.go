// Command jv views and navigates JSON files in the terminal or browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/akarpov/jv"
	"github.com/akarpov/jv/bubbletea"
	jvchroma "github.com/akarpov/jv/chroma"
	"github.com/akarpov/jv/jsonio"
	jvstyle "github.com/akarpov/jv/lipgloss"
	"github.com/akarpov/jv/query"
	"github.com/akarpov/jv/schema"
	"github.com/akarpov/jv/web"
)

const version = "0.1.0"

// CLI defines the command-line flags.
type CLI struct {
	File string `arg:"" optional:"" type:"path" help:"JSON file to view. Reads from stdin if not provided."`

	Web       bool   `short:"w" help:"Open in browser instead of terminal."`
	Port      int    `short:"p" default:"8888" help:"Port for web server (with --web)."`
	ExpandAll bool   `short:"e" help:"Expand all nodes on start."`
	Depth     int    `short:"d" default:"1" help:"Initial expansion depth."`
	Format    bool   `short:"f" help:"Pretty-print JSON and exit."`
	Minify    bool   `short:"m" help:"Minify JSON and exit."`
	Validate  bool   `help:"Validate JSON and show errors."`
	Schema    string `short:"s" type:"path" help:"JSON Schema file for validation."`
	Theme     string `short:"t" default:"dark" enum:"dark,light" help:"Color theme: dark, light."`
	Query     string `short:"q" help:"JSONPath query to filter JSON."`
	Watch     bool   `short:"W" help:"Watch file for changes and reload."`
	Diff      string `type:"path" help:"Compare with another JSON file."`

	Version kong.VersionFlag `short:"V" help:"Show version and exit."`
}

// App carries the parsed flags plus the seams tests swap out: output
// writers and an optional viewer override.
type App struct {
	CLI

	Stdout io.Writer
	Stderr io.Writer
	Viewer jv.Viewer
}

func (a *App) Run(ctx context.Context) error {
	if a.Diff != "" {
		return a.runDiff()
	}

	doc, err := jsonio.ReadDocument(a.File)
	if err != nil {
		return err
	}

	if a.Query != "" {
		filtered, err := query.Apply(doc.Raw, a.Query)
		if err != nil {
			if errors.Is(err, jv.ErrNoQueryResult) {
				fmt.Fprintln(a.Stdout, "Query returned no results")
				return nil
			}
			return err
		}
		doc.Value = filtered
		doc.Raw = []byte(jv.Minify(filtered))
	}

	if a.Validate {
		return a.runValidate(doc)
	}

	if a.Format {
		return a.writeFormatted(doc)
	}

	if a.Minify {
		fmt.Fprintln(a.Stdout, jv.Minify(doc.Value))
		return nil
	}

	depth := a.Depth
	if a.ExpandAll {
		depth = jv.DepthAll
	}

	viewer := a.Viewer
	if viewer == nil {
		if a.Web {
			viewer = &web.Server{Port: a.Port, OpenBrowser: true, Stdout: a.Stdout}
		} else {
			viewer = &bubbletea.Viewer{
				ExpandDepth: depth,
				Theme:       a.Theme,
				Watch:       a.Watch && a.File != "",
			}
		}
	}
	return viewer.View(ctx, doc)
}

func (a *App) runDiff() error {
	if a.File == "" {
		return errors.New("--diff requires a file argument")
	}
	before, err := jsonio.ReadDocument(a.File)
	if err != nil {
		return err
	}
	after, err := jsonio.ReadDocument(a.Diff)
	if err != nil {
		return err
	}

	entries := jv.Diff(before.Value, after.Value)
	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "Files are identical")
		return nil
	}

	styles := jvstyle.NewStyles(nil, jvstyle.ThemeByName(a.Theme))
	fmt.Fprintf(a.Stdout, "Found %d difference(s):\n\n", len(entries))
	fmt.Fprint(a.Stdout, jvstyle.DiffReport(entries, styles))
	return nil
}

func (a *App) runValidate(doc *jv.Document) error {
	fmt.Fprintln(a.Stdout, "Valid JSON")
	if a.Schema == "" {
		return nil
	}
	if err := a.validateSchema(doc); err != nil {
		return err
	}
	fmt.Fprintln(a.Stdout, "Schema validation passed")
	return nil
}

func (a *App) validateSchema(doc *jv.Document) error {
	err := schema.Validate(doc.Raw, a.Schema)
	if err == nil {
		return nil
	}
	var serr *jv.SchemaError
	if errors.As(err, &serr) {
		fmt.Fprintln(a.Stderr, "Schema validation failed:")
		fmt.Fprintf(a.Stderr, "  Path: %s\n", serr.Path)
		fmt.Fprintf(a.Stderr, "  Error: %s\n", serr.Msg)
	}
	return err
}

func (a *App) writeFormatted(doc *jv.Document) error {
	formatted := jv.Format(doc.Value)
	if isTerminal(a.Stdout) {
		return jvchroma.Highlight(a.Stdout, formatted+"\n", jvchroma.StyleForTheme(a.Theme))
	}
	fmt.Fprintln(a.Stdout, formatted)
	return nil
}

// isTerminal reports whether w is an interactive terminal, so formatted
// output is highlighted on screen but left plain when piped.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func main() {
	a := &App{Stdout: os.Stdout, Stderr: os.Stderr}
	kong.Parse(&a.CLI,
		kong.Name("jv"),
		kong.Description("View and navigate JSON files in terminal or browser."),
		kong.UsageOnError(),
		kong.Vars{"version": "jv version " + version},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
