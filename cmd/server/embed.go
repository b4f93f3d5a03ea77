//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the prediction form from the embedded assets
func setupStaticFiles(router *gin.Engine) {
	log.Info().Msg("Using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dist subdirectory")
	}
	serveFrontend(router, distFS)
}
