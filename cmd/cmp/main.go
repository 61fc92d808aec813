package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/dkechag/Image-PHash/phash"
)

var (
	paths    = pflag.StringArrayP("files", "f", []string{"sample.jpg", "sample.jpg"}, "Paths of images to compare")
	size     = pflag.Int("size", phash.DefaultSize, "Luminance grid dimension")
	geometry = pflag.StringP("geometry", "g", "8x8", "Selection geometry (NxN or coefficient count)")
	method   = pflag.StringP("method", "m", "average", "Bit method {average|median|average_x|log|diff}")
	reduce   = pflag.Bool("reduce", false, "Triangular reduction (square geometries only)")
)

func main() {
	pflag.Parse()
	if len(*paths) != 2 {
		logrus.Fatalf("Pass 2 images to compare")
	}

	g, err := phash.ParseGeometry(*geometry)
	if err != nil {
		logrus.Fatalf("Invalid geometry: %v", err)
	}
	m, err := phash.ParseMethod(*method)
	if err != nil {
		logrus.Fatalf("Invalid method: %v", err)
	}
	cfg := phash.Config{Geometry: g, Method: m, Reduce: *reduce}

	hash1 := calcHash((*paths)[0], cfg)
	hash2 := calcHash((*paths)[1], cfg)
	logrus.Printf("Hash for first file is %s, second: %s", hash1, hash2)

	dist, err := phash.Distance(hash1, hash2)
	if err != nil {
		logrus.Fatalf("Error calculating distance: %v", err)
	}
	logrus.Printf("Distance is %d", dist)
}

func calcHash(path string, cfg phash.Config) string {
	hasher, err := phash.NewFromFile(path, phash.WithSize(*size))
	if err != nil {
		logrus.Fatalf("Error reading %s: %v", path, err)
	}
	res, err := hasher.Hash(cfg)
	if err != nil {
		logrus.Fatalf("Error calculating hash for %s: %v", path, err)
	}
	return res.Hex
}
