package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/dkechag/Image-PHash/phash"
)

var (
	path        = pflag.StringP("file", "f", "sample.jpg", "Path to image to hash")
	size        = pflag.Int("size", phash.DefaultSize, "Luminance grid dimension")
	geometry    = pflag.StringP("geometry", "g", "8x8", "Selection geometry (NxN or coefficient count)")
	method      = pflag.StringP("method", "m", "average", "Bit method {average|median|average_x|log|diff}")
	reduce      = pflag.Bool("reduce", false, "Triangular reduction (square geometries only)")
	mirror      = pflag.Bool("mirror", false, "Hash the horizontally mirrored image")
	mirrorproof = pflag.Bool("mirrorproof", false, "Mirror-invariant hash")
)

func main() {
	pflag.Parse()

	cfg, err := parseConfig()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	hasher, err := phash.NewFromFile(*path, phash.WithSize(*size))
	if err != nil {
		logrus.Fatalf("Error reading %s: %v", *path, err)
	}

	res, err := hasher.Hash(cfg)
	if err != nil {
		logrus.Fatalf("Error calculating hash: %v", err)
	}

	logrus.Printf("pHash is %s (%d bits, %s)", res.Hex, len(res.Bits), cfg)
}

func parseConfig() (phash.Config, error) {
	g, err := phash.ParseGeometry(*geometry)
	if err != nil {
		return phash.Config{}, err
	}
	m, err := phash.ParseMethod(*method)
	if err != nil {
		return phash.Config{}, err
	}
	cfg := phash.Config{
		Geometry:    g,
		Method:      m,
		Reduce:      *reduce,
		Mirror:      *mirror,
		MirrorProof: *mirrorproof,
	}
	return cfg, cfg.Validate()
}
