package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type placeOptions struct {
	reference string
	floating  string
	viewport  string
	placement string
	offset    int
	shift     int
	noFlip    bool
	all       bool
}

func newPlaceCmd(a *app) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a floating panel lands next to a reference",
		Example: `  floatkit place --ref 10,5,12,1 --size 20,6 --placement bottom-start
  floatkit place --ref 2,20,10,3 --size 30,8 --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.reference, "ref", "", "Reference rectangle as x,y,width,height (required)")
	cmd.Flags().StringVar(&opts.floating, "size", "", "Floating panel size as width,height (required)")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "Viewport size as width,height (default: terminal size)")
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", "", "Preferred placement (default: select.placement from config)")
	cmd.Flags().IntVar(&opts.offset, "offset", -1, "Gap between reference and panel (default: select.offset from config)")
	cmd.Flags().IntVar(&opts.shift, "shift", 0, "Padding kept from the viewport edge on the cross axis")
	cmd.Flags().BoolVar(&opts.noFlip, "no-flip", false, "Never move to the opposite side")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Compute every placement")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func runPlace(cmd *cobra.Command, a *app, opts *placeOptions) error {
	ref, err := parseInts(opts.reference, 4)
	if err != nil {
		return newCommandError("place", "parsing --ref", err, "Pass four integers, e.g. --ref 10,5,12,1.")
	}
	size, err := parseInts(opts.floating, 2)
	if err != nil {
		return newCommandError("place", "parsing --size", err, "Pass two integers, e.g. --size 20,6.")
	}
	viewport, err := resolveViewport(opts.viewport)
	if err != nil {
		return newCommandError("place", "parsing --viewport", err, "Pass two integers, e.g. --viewport 80,24.")
	}

	placementName := opts.placement
	if placementName == "" {
		placementName = a.cfg.Select.Placement
	}
	preferred, err := geometry.ParsePlacement(placementName)
	if err != nil {
		return newCommandError("place", "parsing --placement", err, "Use a side with an optional alignment, e.g. top-end.")
	}
	offset := opts.offset
	if offset < 0 {
		offset = a.cfg.Select.Offset
	}

	middleware := []geometry.Middleware{geometry.Offset(offset)}
	if !opts.noFlip {
		middleware = append(middleware, geometry.Flip())
	}
	middleware = append(middleware, geometry.Shift(opts.shift))

	reference := geometry.Rect{X: ref[0], Y: ref[1], Width: ref[2], Height: ref[3]}
	floating := geometry.Size{Width: size[0], Height: size[1]}

	placements := []geometry.Placement{preferred}
	if opts.all {
		placements = geometry.Placements()
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "REQUESTED\tX\tY\tPLACEMENT")
	for _, p := range placements {
		engine := geometry.NewEngine(p, middleware...).WithLogger(a.log)
		g, ok := engine.Compute(reference, floating, viewport)
		if !ok {
			return newCommandError("place", "computing position", fmt.Errorf("reference %v or panel %v has no area", reference, floating), "Use positive widths and heights.")
		}
		fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", p, g.X, g.Y, g.Placement)
	}
	return out.Flush()
}

func resolveViewport(value string) (geometry.Rect, error) {
	if strings.TrimSpace(value) != "" {
		wh, err := parseInts(value, 2)
		if err != nil {
			return geometry.Rect{}, err
		}
		return geometry.Viewport(wh[0], wh[1]), nil
	}
	w, h := terminalSize()
	return geometry.Viewport(w, h), nil
}

func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func parseInts(value string, want int) ([]int, error) {
	fields := strings.Split(value, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("want %d comma-separated integers, got %q", want, value)
	}
	out := make([]int, 0, want)
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", field)
		}
		out = append(out, n)
	}
	return out, nil
}
