package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/document"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	width  int
	height int
	ansi   bool
	colors string
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a document once to stdout",
		Long: `Lays out the document in a WIDTH x HEIGHT grid and prints the frame.
Without --ansi the frame is plain text with trailing blanks trimmed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := global.logger()
			if err != nil {
				return err
			}
			defer closer.Close()

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			theme, errs := doc.ResolveTheme()
			printWarnings(cmd.ErrOrStderr(), errs)

			return renderDocument(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), doc, opts,
				tuix.WithTheme(theme), tuix.WithLogger(logger))
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 80, "Viewport width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 24, "Viewport height in cells")
	cmd.Flags().BoolVar(&opts.ansi, "ansi", false, "Emit ANSI escape sequences instead of plain text")
	cmd.Flags().StringVar(&opts.colors, "colors", "true", "Color level for --ansi: none, 16, 256 or true")
	return cmd
}

func renderDocument(ctx context.Context, out, errOut io.Writer, doc *document.Document, opts *renderOptions, engineOpts ...tuix.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.ansi {
		colors, err := tuix.ParseColorCapability(opts.colors)
		if err != nil {
			return err
		}
		term := tuix.NewANSITerminal(out,
			tuix.WithFixedSize(opts.width, opts.height),
			tuix.WithCapabilities(tuix.Capabilities{Colors: colors, Unicode: true}),
			tuix.WithSynchronizedOutput(false),
		)
		rep, err := tuix.NewEngine(term, engineOpts...).Draw(ctx, doc.Snapshot)
		if err != nil {
			return err
		}
		printWarnings(errOut, rep.Warnings)
		_, err = io.WriteString(out, ansi.ResetStyle+"\n")
		return err
	}

	term := tuix.NewMockTerminal(opts.width, opts.height)
	rep, err := tuix.NewEngine(term, engineOpts...).Draw(ctx, doc.Snapshot)
	if err != nil {
		return err
	}
	printWarnings(errOut, rep.Warnings)
	_, err = fmt.Fprintln(out, term.StringTrimmed())
	return err
}

func printWarnings(w io.Writer, warnings []error) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %v\n", warn)
	}
}
