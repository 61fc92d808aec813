package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/dkechag/Image-PHash/internal/store"
	"github.com/dkechag/Image-PHash/luma"
	"github.com/dkechag/Image-PHash/phash"
)

const maxUploadSize = 10 << 20

// Handler serves the hashing and index endpoints.
type Handler struct {
	Store       *store.Store
	Size        int
	Defaults    phash.Config
	MaxDistance int

	cache    *cache.Cache
	hashed   atomic.Int64
	compared atomic.Int64
	started  time.Time
}

// New returns a Handler with a short-lived result cache keyed by upload
// content and hash configuration.
func New(st *store.Store, size int, defaults phash.Config, maxDistance int) *Handler {
	return &Handler{
		Store:       st,
		Size:        size,
		Defaults:    defaults,
		MaxDistance: maxDistance,
		cache:       cache.New(5*time.Minute, 10*time.Minute),
		started:     time.Now(),
	}
}

// HashResponse is the result of hashing one uploaded image.
type HashResponse struct {
	Hash             string `json:"hash"`
	Bits             int    `json:"bits"`
	Config           string `json:"config"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

// CompareResponse is the result of comparing two uploaded images.
type CompareResponse struct {
	Hash1            string  `json:"hash1"`
	Hash2            string  `json:"hash2"`
	Distance         int     `json:"distance"`
	Bits             int     `json:"bits"`
	Similarity       float64 `json:"similarity"`
	Match            bool    `json:"match"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

func isImageFile(ext string) bool {
	supportedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".bmp":  true,
		".tiff": true,
		".webp": true,
	}
	return supportedExts[ext]
}

// configFromForm builds a hash configuration from optional form fields,
// starting from the handler defaults.
func (h *Handler) configFromForm(c *gin.Context) (phash.Config, error) {
	cfg := h.Defaults

	if s := c.PostForm("geometry"); s != "" {
		g, err := phash.ParseGeometry(s)
		if err != nil {
			return cfg, err
		}
		cfg.Geometry = g
	}
	if s := c.PostForm("method"); s != "" {
		m, err := phash.ParseMethod(s)
		if err != nil {
			return cfg, err
		}
		cfg.Method = m
	}
	for field, dst := range map[string]*bool{
		"reduce":      &cfg.Reduce,
		"mirror":      &cfg.Mirror,
		"mirrorproof": &cfg.MirrorProof,
	} {
		if s := c.PostForm(field); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s flag: %q", field, s)
			}
			*dst = v
		}
	}
	return cfg, cfg.Validate()
}

func readUpload(c *gin.Context, field string) ([]byte, *multipart.FileHeader, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("no %s file found", field)
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return nil, nil, fmt.Errorf("file size exceeds 10MB limit")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read file")
	}
	return data, header, nil
}

// hashUpload computes the hash of raw upload bytes, reusing cached
// results for repeated uploads of the same content and configuration.
func (h *Handler) hashUpload(data []byte, cfg phash.Config) (phash.Result, error) {
	digest := sha256.Sum256(data)
	key := hex.EncodeToString(digest[:]) + "|" + cfg.String()
	if cached, ok := h.cache.Get(key); ok {
		return cached.(phash.Result), nil
	}

	hasher := phash.NewFromBytes(data, phash.WithSize(h.Size))
	res, err := hasher.Hash(cfg)
	if err != nil {
		return phash.Result{}, err
	}
	h.cache.SetDefault(key, res)
	h.hashed.Inc()
	return res, nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, luma.ErrSourceUnavailable):
		status = http.StatusBadRequest
	case errors.Is(err, phash.ErrInvalidGeometry),
		errors.Is(err, phash.ErrInvalidMethod),
		errors.Is(err, phash.ErrMirrorConflict),
		errors.Is(err, phash.ErrHashLengthMismatch),
		errors.Is(err, phash.ErrInvalidHash):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// @Summary Hash an image
// @Description Compute the perceptual hash of an uploaded image
// @Tags Hashing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image to hash"
// @Param geometry formData string false "Selection geometry, NxN or coefficient count"
// @Param method formData string false "Bit method: average|median|average_x|log|diff"
// @Param reduce formData bool false "Triangular reduction (square geometries)"
// @Param mirror formData bool false "Hash the horizontally mirrored image"
// @Param mirrorproof formData bool false "Mirror-invariant hash"
// @Success 200 {object} HashResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /hash [post]
func (h *Handler) HashHandler(c *gin.Context) {
	startTime := time.Now()

	cfg, err := h.configFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	data, _, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.hashUpload(data, cfg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, HashResponse{
		Hash:             res.Hex,
		Bits:             len(res.Bits),
		Config:           cfg.String(),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// @Summary Compare two images
// @Description Hash two uploaded images and return their Hamming distance
// @Tags Hashing
// @Accept multipart/form-data
// @Produce json
// @Param image1 formData file true "First image"
// @Param image2 formData file true "Second image"
// @Param max_distance formData int false "Distance at or below which the images count as a match"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /compare [post]
func (h *Handler) CompareHandler(c *gin.Context) {
	startTime := time.Now()

	cfg, err := h.configFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	maxDistance := h.MaxDistance
	if s := c.PostForm("max_distance"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			maxDistance = v
		}
	}

	data1, _, err := readUpload(c, "image1")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data2, _, err := readUpload(c, "image2")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res1, err := h.hashUpload(data1, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	res2, err := h.hashUpload(data2, cfg)
	if err != nil {
		respondError(c, err)
		return
	}

	dist, err := phash.Distance(res1.Hex, res2.Hex)
	if err != nil {
		respondError(c, err)
		return
	}
	h.compared.Inc()

	bits := len(res1.Bits)
	c.JSON(http.StatusOK, CompareResponse{
		Hash1:            res1.Hex,
		Hash2:            res2.Hex,
		Distance:         dist,
		Bits:             bits,
		Similarity:       100.0 - float64(dist)/float64(bits)*100.0,
		Match:            dist <= maxDistance,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// @Summary Distance between two hashes
// @Description Hamming distance between two previously computed hex hashes
// @Tags Hashing
// @Accept multipart/form-data
// @Produce json
// @Param hash1 formData string true "First hex hash"
// @Param hash2 formData string true "Second hex hash"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /distance [post]
func (h *Handler) DistanceHandler(c *gin.Context) {
	dist, err := phash.Distance(c.PostForm("hash1"), c.PostForm("hash2"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"distance": dist})
}

// @Summary Index an image
// @Description Hash an uploaded image and add it to the persistent index
// @Tags Index Management
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image to index"
// @Param name formData string false "Custom name for the image"
// @Success 200 {object} store.Entry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/add [post]
func (h *Handler) AddImageHandler(c *gin.Context) {
	data, header, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isImageFile(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file format. Please upload a valid image."})
		return
	}
	filename := header.Filename
	if customName := c.PostForm("name"); customName != "" {
		filename = customName + ext
	}

	res, err := h.hashUpload(data, h.Defaults)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.Store.Add(filename, res.Hex, len(res.Bits))
	if err != nil {
		logrus.Errorf("Error indexing %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not index image"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// @Summary Search the index
// @Description Hash an uploaded image and return indexed images within max_distance
// @Tags Index Management
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image to search for"
// @Param max_distance formData int false "Maximum Hamming distance"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/search [post]
func (h *Handler) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	maxDistance := h.MaxDistance
	if s := c.PostForm("max_distance"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			maxDistance = v
		}
	}

	data, _, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.hashUpload(data, h.Defaults)
	if err != nil {
		respondError(c, err)
		return
	}

	matches, err := h.Store.Search(res.Hex, maxDistance)
	if err != nil {
		logrus.Errorf("Error searching index: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search index"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hash":               res.Hex,
		"matches":            matches,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	})
}

// @Summary Remove an indexed image
// @Tags Index Management
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/delete/{id} [delete]
func (h *Handler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Delete(id); err != nil {
		logrus.Errorf("Error deleting %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// @Summary List indexed images
// @Tags Index Management
// @Produce json
// @Success 200 {array} store.Entry
// @Failure 500 {object} map[string]string
// @Router /admin/list [get]
func (h *Handler) ListHandler(c *gin.Context) {
	entries, err := h.Store.List()
	if err != nil {
		logrus.Errorf("Error listing index: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list index"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Service statistics
// @Tags Index Management
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
func (h *Handler) StatsHandler(c *gin.Context) {
	indexed, err := h.Store.Count()
	if err != nil {
		logrus.Errorf("Error counting index: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read index"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hashed":         h.hashed.Load(),
		"compared":       h.compared.Load(),
		"indexed":        indexed,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

// @Summary Hello endpoint
// @Description Test connection endpoint
// @Tags Index Management
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/hello [get]
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, world"})
}
