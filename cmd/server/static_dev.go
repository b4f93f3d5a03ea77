//go:build !embed
// +build !embed

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// setupStaticFiles serves the prediction form straight from disk (development mode)
func setupStaticFiles(router *gin.Engine) {
	dir := os.Getenv("WEB_DIST_DIR")
	if dir == "" {
		dir = "./cmd/server/web/dist"
	}
	log.Info().Str("dir", dir).Msg("Using local filesystem for frontend assets (development mode)")

	serveFrontend(router, os.DirFS(dir))
}
