package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"cave-ca/internal/app"
	"cave-ca/internal/core"
	"cave-ca/internal/render"
	_ "cave-ca/internal/sims/caves"
)

type summaryProvider interface {
	Summary() string
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	iterate := flag.Int("iterate", 0, "extra steps to apply after generation")
	ascii := flag.Bool("ascii", false, "print the map as #/. rows")
	out := flag.String("out", "", "write the map to a .png or .bmp file")
	flag.Parse()

	sim, err := app.Launch(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *iterate; i++ {
		if err := sim.Step(); err != nil {
			log.Fatalf("step %d: %v", i+1, err)
		}
	}

	size := sim.Size()
	if *ascii {
		text, err := render.ASCII(size.W, size.H, sim.Cells())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	}

	if *out != "" {
		palette := render.BinaryPalette(color.Black, color.White)
		if provider, ok := sim.(core.PaletteProvider); ok {
			palette = provider.Palette()
		}
		img, err := render.Image(size.W, size.H, sim.Cells(), palette)
		if err != nil {
			log.Fatal(err)
		}
		scaled := render.Scale(img, cfg.Scale)
		if err := render.Save(*out, scaled); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		b := scaled.Bounds()
		fmt.Fprintf(os.Stderr, "wrote %s (%dx%d)\n", *out, b.Dx(), b.Dy())
	}

	status := sim.Name()
	if provider, ok := sim.(summaryProvider); ok {
		status = fmt.Sprintf("%s: %s", sim.Name(), provider.Summary())
	}
	fmt.Println(status)
}
