package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/TheFellow/smoketunnel/pkg/scene"
)

var (
	sceneFlag  = flag.String("scene", "wind", "initial scene: tank, wind, paint or hires")
	resFlag    = flag.Int("res", 0, "rows in the grid, 0 uses the scene default")
	widthFlag  = flag.Int("width", 1200, "window width in pixels")
	heightFlag = flag.Int("height", 600, "window height in pixels")
)

func main() {
	flag.Parse()

	kind, err := scene.ParseKind(*sceneFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		log.Fatalf("window size must be positive, got %dx%d", *widthFlag, *heightFlag)
	}

	g, err := NewGame(*widthFlag, *heightFlag, kind, *resFlag)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("starting %s on a %dx%d grid", kind, g.session.Current().Fluid.NumX, g.session.Current().Fluid.NumY)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("SmokeTunnel")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
