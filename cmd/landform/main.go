package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"landform/internal/core"
	"landform/internal/gen"
	"landform/internal/render"
	pcore "landform/pkg/core"
)

func main() {
	log.SetFlags(0)

	family := flag.String("family", "continental", "terrain family preset")
	width := flag.Int("w", 256, "map width in cells")
	height := flag.Int("h", 256, "map height in cells")
	seed := flag.Int64("seed", -1, "generation seed; negative picks a random seed")
	out := flag.String("out", "out", "output directory for PNG layers")
	params := flag.String("params", "", "comma-separated key=value overrides, e.g. sea_level=0.5,warp_strength=120")
	listFamilies := flag.Bool("families", false, "list terrain families and exit")
	flag.Parse()

	if *listFamilies {
		for _, f := range gen.Families() {
			fmt.Println(f.Name)
		}
		return
	}

	m := map[string]string{
		"family": *family,
		"w":      strconv.Itoa(*width),
		"h":      strconv.Itoa(*height),
	}
	if *seed >= 0 {
		m["seed"] = strconv.FormatUint(uint64(uint32(*seed)), 10)
	} else {
		m["seed"] = strconv.FormatUint(uint64(pcore.NewRNG(time.Now().UnixNano()).Uint32()), 10)
	}
	for _, kv := range strings.Split(*params, ",") {
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("bad parameter override %q, want key=value", kv)
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	cfg := gen.FromMap(m)
	start := time.Now()
	res, err := gen.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	elapsed := time.Since(start)

	if err := writeLayers(*out, res); err != nil {
		log.Fatal(err)
	}

	wet := 0
	for _, w := range res.Water {
		if w > 0.5 {
			wet++
		}
	}
	fmt.Printf("generated %dx%d %s map (seed %d) in %s\n",
		res.Width, res.Height, cfg.Family, cfg.Seed, elapsed.Round(time.Millisecond))
	fmt.Printf("water coverage %.1f%%, %d settlements, %d road edges\n",
		100*float64(wet)/float64(len(res.Water)), len(res.Settlements), len(res.Roads))
	fmt.Printf("layers written to %s\n", *out)
}

func writeLayers(dir string, res *gen.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, layer := range core.Layers() {
		path := filepath.Join(dir, layer.String()+".png")
		if err := writePNG(path, render.LayerImage(res, layer)); err != nil {
			return err
		}
	}
	return writePNG(filepath.Join(dir, "composite.png"), render.CompositeImage(res))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
