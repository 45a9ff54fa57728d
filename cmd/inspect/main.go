package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"xform-reset/internal/asset"
	"xform-reset/internal/decompose"
	"xform-reset/internal/mathutil"
	"xform-reset/internal/reset"
	"xform-reset/internal/scene"
)

func main() {
	assetDir := flag.String("assets", "", "Directory of linked assets, for items without a size")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-assets dir] document.xml...")
		os.Exit(2)
	}

	var assets asset.Resolver
	if *assetDir != "" {
		assets = asset.NewCache(asset.BuildIndex(*assetDir))
	}

	status := 0
	for _, path := range flag.Args() {
		doc, err := scene.Parse(path, assets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
			continue
		}
		fmt.Printf("%s (%d items)\n", doc.Name, len(doc.Items))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  name\tcategory\tangle\tsx\tsy\tshear\tmirror\tstretch\tcenter\tsize")
		for _, it := range doc.Items {
			m := it.LinearMap()
			d := decompose.Decompose(m)
			smax, smin, _ := mathutil.Stretch(m)
			mirror := "-"
			if it.Category().Eligible() {
				h, v := reset.Mirroring(it)
				switch {
				case h && v:
					mirror = "hv"
				case h:
					mirror = "h"
				case v:
					mirror = "v"
				}
			}
			c, sz := it.Bounds().Center(), it.Size()
			fmt.Fprintf(w, "  %s\t%s\t%.2f°\t%.4g\t%.4g\t%.4g\t%s\t%.4g/%.4g\t%.1f,%.1f\t%.1f×%.1f\n",
				it.Name(), it.Kind(), mathutil.Rad2Deg(m.Angle()*it.Category().RotationSign()),
				d.SX, d.SY, d.Shear, mirror, smax, smin, c.X, c.Y, sz.X, sz.Y)
		}
		w.Flush()
	}
	os.Exit(status)
}
