// Palette preview tool - prints the scene palettes generated for a range of seeds.
//
// Usage: go run ./cmd/palettepreview -from 0 -count 8
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/palette"
	"github.com/pthm-cable/garden/scene"
)

// slotNames label the palette slots in output.
var slotNames = [palette.Size]string{"stem", "petal", "center", "bouton", "root", "building"}

// swatch renders a color as a 24-bit ANSI background block.
func swatch(c palette.Color) string {
	r, g, b := c.HSL.RGB()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", r, g, b)
}

func main() {
	configPath := flag.String("config", "", "Base config file (empty = use defaults)")
	from := flag.Int64("from", 0, "First numeric seed")
	count := flag.Int("count", 8, "Number of seeds to preview")
	seed := flag.String("seed", "", "Preview a single textual seed instead of a range")
	plain := flag.Bool("plain", false, "Disable ANSI color swatches")
	flag.Parse()

	base, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	seeds := []string{*seed}
	if *seed == "" {
		seeds = seeds[:0]
		for i := 0; i < *count; i++ {
			seeds = append(seeds, strconv.FormatInt(*from+int64(i), 10))
		}
	}

	// The palette is drawn after the grid, so it depends on the whole config,
	// not just the seed.
	for _, s := range seeds {
		sc, err := scene.Generate(base.WithSeed(s))
		if err != nil {
			log.Fatalf("seed %s: %v", s, err)
		}
		fmt.Printf("seed %s\n", s)
		for i, c := range sc.Palette {
			line := fmt.Sprintf("  %-8s %s  h=%3.0f s=%3.0f l=%3.0f", slotNames[i], c.Hex, c.HSL.H, c.HSL.S, c.HSL.L)
			if !*plain {
				line = swatch(c) + " " + line
			}
			fmt.Println(line)
		}
	}
}
