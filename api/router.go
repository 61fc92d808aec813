package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dkechag/Image-PHash/api/handler"
	_ "github.com/dkechag/Image-PHash/docs"
)

// @title Image PHash API
// @version 1.0
// @description Perceptual image hashing and near-duplicate search
// @BasePath /
func Router(hand *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/hash", hand.HashHandler)
	r.POST("/compare", hand.CompareHandler)
	r.POST("/distance", hand.DistanceHandler)

	admin := r.Group("/admin")
	{
		admin.POST("/add", hand.AddImageHandler)
		admin.POST("/search", hand.SearchHandler)
		admin.DELETE("/delete/:id", hand.DeleteHandler)
		admin.GET("/list", hand.ListHandler)
		admin.GET("/stats", hand.StatsHandler)
		admin.GET("/hello", hand.Hello)
	}
	return r
}
