package main

import (
	"flag"
	"fmt"
	"os"

	"maze-crawler/internal/game"
	"maze-crawler/internal/generate"
)

func main() {
	width := flag.Int("width", game.DefaultWidth, "dungeon width in cells")
	height := flag.Int("height", game.DefaultHeight, "dungeon height in cells")
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	linear := flag.Bool("linear", false, "use the diagonal-chain layout instead of the slot grid")
	flag.Parse()

	g, err := game.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.SetSize(*width, *height)
	if *seed != 0 {
		g.SetSeed(*seed)
	}
	if *linear {
		g.SetStrategy(generate.StrategyLinear)
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
