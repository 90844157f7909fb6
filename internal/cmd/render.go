package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/ngmat"
)

type renderFlags struct {
	id            string
	queryParam    string
	baseURL       string
	sort          string
	sortDirection ngmat.SortDirection
	attrsFile     string
	content       string
	contentFile   string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.id, ngmat.AttrID, "", "template reference name (default generated)")
	fs.StringVar(&f.queryParam, ngmat.AttrQueryParam, "", "expression bound to [queryParam]")
	fs.StringVar(&f.baseURL, ngmat.AttrBaseURL, "", "data endpoint")
	fs.StringVar(&f.sort, ngmat.AttrSort, "", "initially active sort column")
	fs.Var(&f.sortDirection, ngmat.AttrSortDirection, "initial sort direction: asc or desc")
	fs.StringVarP(&f.attrsFile, "attrs", "a", "", "YAML file of attributes")
	fs.StringVarP(&f.content, "content", "c", "", "inner markup")
	fs.StringVar(&f.contentFile, "content-file", "", "read inner markup from file (- for stdin)")
}

// attributes layers, lowest first: config defaults, --attrs file, flags.
func (f *renderFlags) attributes(fs *pflag.FlagSet, defaults ngmat.Attributes) (ngmat.Attributes, error) {
	var attrs ngmat.Attributes
	if f.attrsFile != "" {
		data, err := os.ReadFile(f.attrsFile)
		if err != nil {
			return nil, err
		}
		attrs, err = ngmat.ParseAttributes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.attrsFile, err)
		}
	}
	set := func(name, value string) {
		if fs.Changed(name) {
			attrs.Set(name, value)
		}
	}
	set(ngmat.AttrID, f.id)
	set(ngmat.AttrQueryParam, f.queryParam)
	set(ngmat.AttrBaseURL, f.baseURL)
	set(ngmat.AttrSort, f.sort)
	set(ngmat.AttrSortDirection, f.sortDirection.String())
	return attrs.Merge(defaults), nil
}

func (f *renderFlags) readContent(fs *pflag.FlagSet, stdin io.Reader) (string, error) {
	if !fs.Changed("content-file") {
		return f.content, nil
	}
	if fs.Changed("content") {
		return "", &usageError{err: fmt.Errorf("--content and --content-file are mutually exclusive")}
	}
	if f.contentFile == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(f.contentFile)
	return string(data), err
}

func newRenderCmd(app *App) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Render a helper's markup to stdout",
		Example: `  ngmat render table --id orders --sort created --sort-direction desc
  ngmat render table --attrs table.yaml --content-file columns.html`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := ngmat.ParseKind(args[0])
			if err != nil {
				return err
			}
			attrs, err := flags.attributes(cmd.Flags(), app.cfg.Defaults[kind])
			if err != nil {
				return err
			}
			content, err := flags.readContent(cmd.Flags(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			slog.Debug("rendering", "kind", kind, "attributes", attrs.Names())
			out, err := ngmat.Marshal(kind, attrs, content, ngmat.WithIDSource(app.cfg.IDSource()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.Stdout, string(out))
			return err
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newKindsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List helper kinds",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range ngmat.Kinds() {
				if _, err := fmt.Fprintln(app.Stdout, k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
