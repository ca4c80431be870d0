package main

import (
	"context"
	"io/fs"
	"log"
	"math/rand"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WaleiChang/expense-tracker/config"
	"github.com/WaleiChang/expense-tracker/handlers"
	"github.com/WaleiChang/expense-tracker/logger"
	"github.com/WaleiChang/expense-tracker/mascot"
	"github.com/WaleiChang/expense-tracker/middleware"
	"github.com/WaleiChang/expense-tracker/mongodb"
	"github.com/WaleiChang/expense-tracker/web"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Get().Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongodb.Disconnect(client)

	store := mongodb.NewStore(client, cfg.MongoDatabase)
	picker := mascot.NewPicker(rand.NewSource(time.Now().UnixNano()))
	h := handlers.New(store, picker)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger)
	router.Use(middleware.CorsMiddleware)

	api := router.Group("/api")
	{
		api.GET("/expenses", h.HandleListExpenses)
		api.POST("/expenses", h.HandleCreateExpense)
		api.DELETE("/expenses/:id", h.HandleDeleteExpense)
		api.GET("/expenses/months", h.HandleListMonths)
		api.GET("/expenses/summary", h.HandleMonthlySummary)
		api.GET("/expenses/summary/weekly", h.HandleWeeklySummary)
		api.GET("/mascot", h.HandleMascotMessage)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	public, err := fs.Sub(web.PublicFS, "public")
	if err != nil {
		logger.Get().Fatal("failed to mount embedded frontend", zap.Error(err))
	}
	router.NoRoute(serveFrontend(public))

	logger.Get().Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}

// serveFrontend serves the embedded client; unknown paths fall back to
// index.html, mirroring the catch-all of a single page app.
func serveFrontend(public fs.FS) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}
		data, err := fs.ReadFile(public, name)
		if err != nil {
			name = "index.html"
			if data, err = fs.ReadFile(public, name); err != nil {
				c.Status(http.StatusNotFound)
				return
			}
		}

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
