package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	_ "github.com/d60-Lab/bingeboard/docs"
	"github.com/d60-Lab/bingeboard/internal/api/handler"
	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/service"
)

// NewRouter assembles the gin engine: recovery, gzip, tracing, rate
// limiting, then the versioned route table.
func NewRouter(h *handler.Handler, auth *service.AuthService, mode string) *gin.Engine {
	gin.SetMode(mode)
	registerValidations()

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		otelgin.Middleware("bingeboard"),
		middleware.RateLimit(rate.Limit(50), 100),
	)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/signup", h.Signup)
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/logout", h.Logout)

		v1.GET("/users", h.ListUsers)
		v1.GET("/users/:user_id/followers", h.ListFollowers)
		v1.GET("/users/:user_id/following", h.ListFollowing)
		v1.GET("/media", h.ListMedia)
		v1.GET("/posts/:post_id", h.GetPost)
		v1.GET("/posts/:post_id/comments", h.ListComments)

		authed := v1.Group("", middleware.Auth(auth))
		{
			authed.GET("/discover", h.Discover)
			authed.GET("/search", h.SearchUsers)

			authed.POST("/follows", h.Follow)
			authed.DELETE("/follows/:user_id", h.Unfollow)

			authed.GET("/feed", h.Feed)
			authed.POST("/posts", h.CreatePost)
			authed.PUT("/posts/:post_id", h.EditPost)
			authed.DELETE("/posts/:post_id", h.DeletePost)

			authed.POST("/posts/:post_id/comments", h.AddComment)
			authed.DELETE("/comments/:comment_id", h.DeleteComment)

			authed.POST("/media", h.CreateMedia)

			for _, state := range []string{model.TableWatched, model.TableWatching, model.TableWatchlist} {
				g := authed.Group("/"+state, handler.WatchState(state))
				g.POST("", h.AddWatch)
				g.DELETE("", h.RemoveWatch)
				g.GET("", h.ListWatch)
			}
		}
	}
	return r
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case model.MediaTypeMovie, model.MediaTypeTV:
				return true
			}
			return false
		})
	}
}
