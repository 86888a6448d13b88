// Package server exposes the generation pipeline over HTTP together
// with the embedded web form UI.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"article_agent/generator"
)

//go:embed web
var embeddedStatic embed.FS

const runTimeout = 5 * time.Minute

// Server holds the pipeline and the single most-recent result. A new
// run replaces the stored result wholesale; a failed run leaves it
// untouched.
type Server struct {
	pipeline *generator.Pipeline
	log      *slog.Logger

	mu     sync.Mutex
	latest *generator.Result
}

func New(pipeline *generator.Pipeline, log *slog.Logger) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{pipeline: pipeline, log: log}, nil
}

// Routes builds the gin engine with the API and the static UI.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/articles", s.handleGenerate)
	api.GET("/articles/latest", s.handleLatest)
	api.GET("/articles/latest/download", s.handleDownload)

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		// The embed is part of the binary; a bad sub path is a build bug.
		panic(err)
	}
	r.StaticFileFS("/", "index.html", http.FS(sub))

	return r
}

// articleResp is the API view of a result: the raw fields plus rendered
// HTML for the browser preview.
type articleResp struct {
	*generator.Result
	OutlineHTML   string `json:"outline_html,omitempty"`
	ArticleHTML   string `json:"article_html,omitempty"`
	ResourcesHTML string `json:"resources_html,omitempty"`
}

func toResp(res *generator.Result) articleResp {
	out := articleResp{Result: res}
	out.OutlineHTML, _ = generator.HTML(res.Outline)
	out.ArticleHTML, _ = generator.HTML(res.Article)
	out.ResourcesHTML, _ = generator.HTML(res.Resources)
	return out
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), runTimeout)
	defer cancel()

	res, err := s.pipeline.Run(ctx, req)
	if err != nil {
		var stage *generator.StageError
		if errors.As(err, &stage) {
			status := http.StatusBadGateway
			if stage.State == generator.StateConfigError {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"state": string(stage.State), "error": stage.Err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.latest = res
	s.mu.Unlock()

	c.JSON(http.StatusOK, toResp(res))
}

func (s *Server) handleLatest(c *gin.Context) {
	res := s.latestResult()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no article generated yet"})
		return
	}
	c.JSON(http.StatusOK, toResp(res))
}

func (s *Server) handleDownload(c *gin.Context) {
	res := s.latestResult()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no article generated yet"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generator.Filename(res.Title)))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(generator.Markdown(res)))
}

func (s *Server) latestResult() *generator.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
