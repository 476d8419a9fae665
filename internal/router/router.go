package router

import (
	"github.com/fernape-Domino/Portal-Escritura/internal/config"
	"github.com/fernape-Domino/Portal-Escritura/internal/handler"
	"github.com/fernape-Domino/Portal-Escritura/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	authHandler := handler.NewAuthHandler(cfg.Session)

	// public: welcome screen and PIN prompt
	r.GET("/", authHandler.Welcome)
	r.GET("/pin", authHandler.ShowPin)
	r.POST("/pin", authHandler.SubmitPin)

	// everything else sits behind the PIN gate
	protected := r.Group("")
	protected.Use(middleware.PinRequired(cfg.Session))

	protected.GET("/inicio", authHandler.Home)
	protected.POST("/salir", authHandler.Logout)

	writingHandler := handler.NewWritingHandler(db)
	protected.GET("/categoria/:slug", writingHandler.CategoryPage)
	protected.POST("/categoria/:slug", writingHandler.SaveWriting)
	protected.POST("/texto/:id/borrar", writingHandler.DeleteWriting)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/texto/:id/descargar", exportHandler.DownloadPDF)
	protected.GET("/texto/:id/descargar/html", exportHandler.DownloadHTML)
	protected.GET("/categoria/:slug/exportar/csv", exportHandler.ExportCSV)
	protected.GET("/categoria/:slug/exportar/xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(db, cfg.Backup.EncryptionKey, cfg.Backup.Dir)
	api := protected.Group("/api")
	api.POST("/respaldos", backupHandler.CreateBackup)
	api.GET("/respaldos", backupHandler.ListBackups)
	api.GET("/respaldos/:id/descargar", backupHandler.DownloadBackup)
	api.POST("/respaldos/:id/restaurar", backupHandler.RestoreBackup)
	api.DELETE("/respaldos/:id", backupHandler.DeleteBackup)

	return r
}
