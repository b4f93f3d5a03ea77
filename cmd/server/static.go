package main

import (
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// serveFrontend answers unmatched routes from dist, falling back to index.html
// so the form page loads on any path. API paths keep a JSON 404.
func serveFrontend(router *gin.Engine, dist fs.FS) {
	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "/index.html"
		}
		cleanPath = strings.TrimPrefix(cleanPath, "/")

		if content, ok := readFile(dist, cleanPath); ok {
			contentType, known := contentTypes[path.Ext(cleanPath)]
			if !known {
				contentType = "application/octet-stream"
			}
			c.Data(http.StatusOK, contentType, content)
			return
		}

		content, ok := readFile(dist, "index.html")
		if !ok {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusOK, contentTypes[".html"], content)
	})
}

func readFile(dist fs.FS, name string) ([]byte, bool) {
	file, err := dist.Open(name)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return nil, false
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return content, true
}
