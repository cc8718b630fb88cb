// Package api provides the REST API server for ripples
package api

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/james-see/ripples/pkg/generator"
	"github.com/james-see/ripples/pkg/render"
	"github.com/james-see/ripples/pkg/theory"
)

// @title Ripples API
// @version 1.0
// @description API for generating seeded procedural songs as MIDI files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return newRouter().Run(fmt.Sprintf(":%d", port))
}

func newRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/generate", handleGenerate)
		v1.GET("/generate/:seed", handleGenerateSeed)
		v1.GET("/songs/:seed", handleSongSummary)
		v1.GET("/keys", listKeys)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ripples",
	})
}

// GenerateRequest is the body of a generation request. All fields are
// optional; a missing seed gets a fresh random one, echoed back in the
// response headers so the result stays reproducible.
type GenerateRequest struct {
	Seed  string `json:"seed"`
	Key   string `json:"key"`
	Beats int    `json:"beats"`
	One   bool   `json:"one"`
}

// handleGenerate godoc
// @Summary Generate a song
// @Description Generates a song from a seed and returns the MIDI file
// @Tags generate
// @Accept json
// @Produce application/octet-stream
// @Param request body GenerateRequest false "Generation parameters"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /generate [post]
func handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	if req.Seed == "" {
		req.Seed = fmt.Sprint(rand.Intn(65536))
	}
	respondWithSong(c, req)
}

// handleGenerateSeed godoc
// @Summary Generate a song for a seed
// @Description Generates a song with default settings for the given seed
// @Tags generate
// @Produce application/octet-stream
// @Param seed path string true "Generation seed"
// @Success 200 {file} binary
// @Router /generate/{seed} [get]
func handleGenerateSeed(c *gin.Context) {
	respondWithSong(c, GenerateRequest{Seed: c.Param("seed")})
}

func respondWithSong(c *gin.Context, req GenerateRequest) {
	song, status, err := generateSong(req)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	data, err := render.New().RenderSMF(song)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("render failed: %v", err)})
		return
	}

	filename := render.Filename(song.Seed)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("X-Ripples-Seed", song.Seed)
	c.Data(http.StatusOK, "audio/midi", data)
}

// handleSongSummary godoc
// @Summary Describe a song
// @Description Returns the structure, key and harmony a seed generates, without rendering MIDI
// @Tags generate
// @Produce json
// @Param seed path string true "Generation seed"
// @Success 200 {object} map[string]interface{}
// @Router /songs/{seed} [get]
func handleSongSummary(c *gin.Context) {
	song, status, err := generateSong(GenerateRequest{Seed: c.Param("seed")})
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	chords := make(map[string][]string)
	for label, prog := range song.Progressions {
		for _, chord := range prog.Chords {
			chords[label] = append(chords[label], chord.Name())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":      song.Seed,
		"key":       song.Key.Name(),
		"tempo":     song.Tempo,
		"time":      fmt.Sprintf("%d/4", song.BeatsPerMeasure),
		"bassStyle": string(song.BassStyle),
		"structure": song.Structure.String(),
		"chords":    chords,
		"duration":  float64(song.TotalDuration()),
	})
}

func generateSong(req GenerateRequest) (*generator.Song, int, error) {
	cfg := generator.DefaultConfig()
	cfg.Key = req.Key
	cfg.BeatsPerMeasure = req.Beats
	cfg.SingleSection = req.One

	gen, err := generator.New(cfg, req.Seed)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	song, err := gen.Generate()
	if err != nil {
		if errors.Is(err, theory.ErrInvalidKey) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return song, 0, nil
}

// listKeys godoc
// @Summary List supported keys
// @Description Returns the musical keys the generator supports
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /keys [get]
func listKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keys": theory.KeyNames})
}
