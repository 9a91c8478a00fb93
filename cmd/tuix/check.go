package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/document"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	width  int
	height int
	boxes  bool
}

func newCheckCmd(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a document without drawing it",
		Long: `Loads the document and builds its tree. Structural errors fail the
check; directive and theme warnings are printed. With --boxes the laid out
rectangle of every node is listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closer, err := global.logger()
			if err != nil {
				return err
			}
			defer closer.Close()
			return checkDocument(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 80, "Viewport width used with --boxes")
	cmd.Flags().IntVar(&opts.height, "height", 24, "Viewport height used with --boxes")
	cmd.Flags().BoolVar(&opts.boxes, "boxes", false, "Print the layout of every node")
	return cmd
}

func checkDocument(out io.Writer, path string, opts *checkOptions) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	_, themeErrs := doc.ResolveTheme()
	printWarnings(out, themeErrs)

	tree, err := tuix.Build(doc.Snapshot, nil)
	if err != nil {
		return err
	}
	printWarnings(out, tree.Warnings())

	if opts.boxes {
		res, err := tuix.Layout(tree, tuix.NewRect(0, 0, opts.width, opts.height))
		if err != nil {
			return err
		}
		tree.Walk(func(i int, n *tuix.Node) {
			box := res.At(i)
			depth := 0
			for p := n.Parent(); p >= 0; p = tree.Node(p).Parent() {
				depth++
			}
			fmt.Fprintf(out, "%s%s (%s) rect=%v visible=%v\n",
				strings.Repeat("  ", depth), n.ID, n.Kind, box.Rect, box.Visible)
		})
	}

	fmt.Fprintf(out, "%s: %d nodes, %d warnings\n", path, tree.Len(), len(tree.Warnings())+len(themeErrs))
	return nil
}
