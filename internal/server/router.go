package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"showlink/internal/dao"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, dao.Fail("not found"))
			return
		}
		c.Status(http.StatusNotFound)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := router.Group("/api/v1")
	s.SetUpApiV1Router(apiV1)

	return router
}

func (s *Server) SetUpApiV1Router(apiV1 *gin.RouterGroup) {
	sessions := apiV1.Group("/game-sessions")
	sessions.GET("/random", s.handleRandomSearch)
	sessions.POST("/search", s.handleSearchSessions)
	sessions.GET("/:session_id", s.handleGetSession)

	auth := apiV1.Group("/auth")
	auth.POST("/login", s.handleLogin)
	auth.POST("/refresh", s.handleRefreshToken)
	auth.POST("/forgot-password", s.handleForgotPassword)

	apiV1.GET("/schemas/:name", s.handleGetSchema)

	guest := apiV1.Group("")
	guest.Use(s.MustBeGuest())
	guest.POST("/contacts/submission", s.handleSubmissionForm)

	users := apiV1.Group("/users")
	users.Use(s.MustBeUser())
	users.GET("/profile", s.handleGetProfile)
	users.GET("/friends", s.handleListFriends)
	users.POST("/avatar", s.handleUploadAvatar)

	producer := apiV1.Group("/producer")
	producer.Use(s.MustBeProducer())
	producer.GET("/permissions", s.handleGetProducerPermissions)
}
