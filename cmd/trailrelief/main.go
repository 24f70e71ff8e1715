// Command trailrelief turns a GPX track into a 3D-printable STL
// relief model. It is a thin cobra CLI over the generate package: read
// a file, build a Config from flags, run the pipeline, write the mesh.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trailrelief/entities"
	"trailrelief/generate"
	"trailrelief/stl"
)

var (
	inPath  string
	outPath string
	format  string

	buffer         float64
	vertical       float64
	bedX, bedY     float64
	base           float64
	shape          string
	projSource     string
	projection     string
	zOverride      bool
	zConstant      float64
	zCut           bool
	regionFit      bool
	regionMinX     float64
	regionMaxX     float64
	regionMinY     float64
	regionMaxY     float64
	markerInterval float64
	markerHeight   float64
	smoothType     string
	smoothSpan     float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("trailrelief: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trailrelief",
		Short: "Convert a GPX track into a printable 3D relief model",
		RunE:  run,
	}

	flags := cmd.Flags()
	flags.StringVar(&inPath, "in", "", "input GPX file (required)")
	flags.StringVar(&outPath, "out", "", "output file (required)")
	flags.StringVar(&format, "format", "stl", "output format: stl, jscad, or openscad")

	cfg := entities.DefaultConfig()
	flags.Float64Var(&buffer, "buffer", cfg.Buffer, "ribbon half-width plus print margin, mm")
	flags.Float64Var(&vertical, "vertical", cfg.Vertical, "elevation exaggeration factor")
	flags.Float64Var(&bedX, "bedx", cfg.BedX, "print bed X size, mm")
	flags.Float64Var(&bedY, "bedy", cfg.BedY, "print bed Y size, mm")
	flags.Float64Var(&base, "base", cfg.Base, "flat base thickness, mm")
	flags.StringVar(&shape, "shape", "map", "layout shape: map, linear, or ring")
	flags.StringVar(&projSource, "projtype", "autoutm", "projection source: autoutm, google, or custom")
	flags.StringVar(&projection, "projection", "", "proj4 definition string, required when projtype=custom")
	flags.BoolVar(&zOverride, "zoverride", false, "force every elevation to --zconstant")
	flags.Float64Var(&zConstant, "zconstant", 0, "elevation used for missing <ele> or when --zoverride is set")
	flags.BoolVar(&zCut, "zcut", cfg.ZCut, "cut the model's base at the track's lowest point")
	flags.BoolVar(&regionFit, "regionfit", false, "fit the bed scale to an explicit region instead of the track's own bounds")
	flags.Float64Var(&regionMinX, "region-minx", 0, "region fit: minimum X")
	flags.Float64Var(&regionMaxX, "region-maxx", 0, "region fit: maximum X")
	flags.Float64Var(&regionMinY, "region-miny", 0, "region fit: minimum Y")
	flags.Float64Var(&regionMaxY, "region-maxy", 0, "region fit: maximum Y")
	flags.Float64Var(&markerInterval, "markerinterval", 0, "distance between markers, metres (0 disables markers)")
	flags.Float64Var(&markerHeight, "markerheight", cfg.MarkerHeight, "marker box height, mm")
	flags.StringVar(&smoothType, "smoothtype", "auto", "point-thinning mode: auto or span")
	flags.Float64Var(&smoothSpan, "smoothspan", 0, "minimum distance between kept points, metres, when smoothtype=span")

	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	gen := generate.New(func(percent int) {
		fmt.Fprintf(os.Stderr, "\r%s %3d%%", color.CyanString("generating"), percent)
		if percent == 100 {
			fmt.Fprintln(os.Stderr)
		}
	})

	artifact, info, err := gen.FromGPX(data, cfg)
	if err != nil {
		return err
	}

	payload, err := encode(artifact)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	color.Green("✓ %s -> %s", info.Name, outPath)
	fmt.Printf("  %skm, %d triangles, %s\n",
		humanize.FtoaWithDigits(artifact.TotalDistance/1000, 2),
		len(artifact.Mesh.Triangles),
		humanize.Bytes(uint64(len(payload))),
	)
	return nil
}

func encode(artifact *entities.Artifact) ([]byte, error) {
	switch format {
	case "stl":
		return stl.Bytes(artifact.Mesh, "trailrelief"), nil
	case "jscad":
		return []byte(stl.JSCAD(artifact, false)), nil
	case "openscad":
		return []byte(stl.OpenSCAD(artifact)), nil
	default:
		return nil, fmt.Errorf("unknown --format %q: want stl, jscad, or openscad", format)
	}
}

func buildConfig() (entities.Config, error) {
	cfg := entities.DefaultConfig()
	cfg.Buffer = buffer
	cfg.Vertical = vertical
	cfg.BedX = bedX
	cfg.BedY = bedY
	cfg.Base = base
	cfg.ZOverride = zOverride
	cfg.ZConstant = zConstant
	cfg.ZCut = zCut
	cfg.RegionFit = regionFit
	cfg.RegionMinX, cfg.RegionMaxX = regionMinX, regionMaxX
	cfg.RegionMinY, cfg.RegionMaxY = regionMinY, regionMaxY
	cfg.MarkerInterval = markerInterval
	cfg.MarkerHeight = markerHeight
	cfg.Projection = projection

	switch shape {
	case "map":
		cfg.Shape = entities.ShapeMap
	case "linear":
		cfg.Shape = entities.ShapeLinear
	case "ring":
		cfg.Shape = entities.ShapeRing
	default:
		return cfg, fmt.Errorf("unknown --shape %q: want map, linear, or ring", shape)
	}

	switch projSource {
	case "autoutm":
		cfg.ProjSource = entities.ProjAutoUTM
	case "google":
		cfg.ProjSource = entities.ProjGoogle
	case "custom":
		cfg.ProjSource = entities.ProjCustom
	default:
		return cfg, fmt.Errorf("unknown --projtype %q: want autoutm, google, or custom", projSource)
	}

	switch smoothType {
	case "auto":
		cfg.SmoothType = entities.SmoothAuto
	case "span":
		cfg.SmoothType = entities.SmoothSpan
		cfg.SmoothSpan = smoothSpan
	default:
		return cfg, fmt.Errorf("unknown --smoothtype %q: want auto or span", smoothType)
	}

	return cfg, nil
}
