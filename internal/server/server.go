package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/config"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/server/handlers"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/store"
)

// Server HTTP server
type Server struct {
	router   *gin.Engine
	store    *store.Store
	handlers *handlers.Handlers
}

// NewServer tạo server
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "baocaocheck.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Khởi tạo database thất bại: %v", err)
	}

	s := &Server{
		router:   gin.Default(),
		store:    sqliteStore,
		handlers: handlers.NewHandlers(sqliteStore, cfg),
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes đăng ký route
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/upload", s.handlers.UploadFile)
		api.DELETE("/upload/:fileId", s.handlers.CloseFile)
		api.POST("/extract", s.handlers.Extract)
		api.POST("/vat/reconcile", s.handlers.ReconcileVAT)
		api.GET("/stats/:kind", s.handlers.GetStats)
		api.GET("/export/:kind", s.handlers.ExportStats)
		api.GET("/export/download/:exportId", s.handlers.Download)
		api.GET("/imports", s.handlers.ListImportLogs)
	}

	if devMode {
		// chế độ dev: chuyển tiếp sang dev server của frontend
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"name":   "BAOCAOCHECK",
				"status": "ok",
			})
		})
	}
}

// Run chạy server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close đóng tài nguyên trước khi thoát
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore lấy store (dùng cho test)
func (s *Server) GetStore() *store.Store {
	return s.store
}
