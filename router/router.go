package router

import (
	"DocVault/config"
	"DocVault/internal/handler"
	"DocVault/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())
	r.Use(utils.RequestIDMiddleware())

	// uploaded binaries are served straight from disk on the local backend
	if config.AppConfig.StorageBackend != "minio" {
		r.Static("/upload", config.AppConfig.UploadDir)
	}

	api := r.Group("/api/core")
	{
		api.GET("/health", handler.Health)

		docs := api.Group("")
		if config.AppConfig.AuthEnabled {
			docs.Use(utils.AuthMiddleware())
		}

		docs.GET("/documents", handler.ListDocuments)
		docs.GET("/documents/:id", handler.DocumentDetails)
		docs.POST("/create-folder", handler.CreateFolder)
		docs.DELETE("/documents/:id", handler.DeleteDocument)

		upload := docs.Group("")
		upload.Use(utils.RateLimitMiddleware(config.AppConfig.UploadRate, config.AppConfig.UploadBurst))
		upload.POST("/upload-file", handler.UploadFile)
	}
	return r
}
