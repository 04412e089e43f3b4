package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"osohub/internal/api/middleware"
	"osohub/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	userGroup := r.Group("/users")
	{
		userGroup.GET("", group.UserHandler.ListUsers)
		userGroup.POST("", group.UserHandler.CreateUser)
		userGroup.GET("/:user_id", group.UserHandler.GetUser)
		userGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
		userGroup.PATCH("/:user_id", group.UserHandler.PartialUpdateUser)
		userGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
	}

	postGroup := r.Group("/posts")
	{
		postGroup.POST("", group.PostHandler.CreatePost)
		postGroup.GET("/user/:user_id", group.PostHandler.ListByUser)
		postGroup.DELETE("/user/:user_id/:post_id", group.PostHandler.DeleteByUser)
		postGroup.GET("/date/:date_bucket", group.PostHandler.ListByDateBucket)
		postGroup.DELETE("/date/:date_bucket/:post_id", group.PostHandler.DeleteByDateBucket)
		postGroup.GET("/keyword/:keyword", group.PostHandler.ListByKeyword)
		postGroup.DELETE("/keyword/:keyword/:post_id", group.PostHandler.DeleteByKeyword)
	}

	commentGroup := r.Group("/comments")
	{
		commentGroup.POST("", group.CommentHandler.CreateComment)
		commentGroup.GET("/:post_id", group.CommentHandler.ListByPost)
		commentGroup.PUT("/:post_id/:comment_id", group.CommentHandler.UpdateComment)
	}

	likeGroup := r.Group("/likes")
	{
		likeGroup.POST("", group.LikeHandler.CreateLike)
		likeGroup.GET("/count/:post_id", group.LikeHandler.GetCount)
		likeGroup.GET("/:post_id", group.LikeHandler.ListByPost)
		likeGroup.DELETE("", group.LikeHandler.DeleteLike)
		likeGroup.DELETE("/:post_id/:user_id", group.LikeHandler.DeleteLikeByPath)
	}

	followerGroup := r.Group("/followers")
	{
		followerGroup.POST("", group.FollowHandler.CreateFollower)
		followerGroup.GET("/:user_id", group.FollowHandler.ListFollowers)
		followerGroup.DELETE("", group.FollowHandler.DeleteFollower)
		followerGroup.DELETE("/:user_id/:follower_id", group.FollowHandler.DeleteFollowerByPath)
	}

	followeeGroup := r.Group("/followees")
	{
		followeeGroup.POST("", group.FollowHandler.CreateFollowee)
		followeeGroup.GET("/:user_id", group.FollowHandler.ListFollowees)
		followeeGroup.DELETE("", group.FollowHandler.DeleteFollowee)
		followeeGroup.DELETE("/:user_id/:followee_id", group.FollowHandler.DeleteFolloweeByPath)
	}

	feedGroup := r.Group("/feed")
	{
		feedGroup.GET("/:user_id", group.FeedHandler.ListByUser)
		feedGroup.DELETE("/:user_id/:post_id", group.FeedHandler.DeleteItem)
	}

	mediaGroup := r.Group("/media")
	{
		mediaGroup.POST("/upload", group.MediaHandler.Upload)
	}

	return r
}
