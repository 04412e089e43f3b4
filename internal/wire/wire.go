package wire

import (
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"osohub/internal/api"
	"osohub/internal/api/config"
	"osohub/internal/api/handler"
	"osohub/internal/job"
	"osohub/internal/pkg/cron"
	"osohub/internal/pkg/kafka"
	"osohub/internal/pkg/minio"
	"osohub/internal/repository"
	"osohub/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	Session      *gocql.Session
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(session *gocql.Session, storage *minio.Client, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(session)
	postRepo := repository.NewPostRepo(session)
	commentRepo := repository.NewCommentRepo(session)
	likeRepo := repository.NewLikeRepo(session)
	followRepo := repository.NewFollowRepo(session)
	feedRepo := repository.NewFeedRepo(session)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)
	likeService := service.NewLikeService(likeRepo)
	followService := service.NewFollowService(followRepo)
	feedService := service.NewFeedService(feedRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		FollowHandler:  handler.NewFollowHandler(followService),
		FeedHandler:    handler.NewFeedHandler(feedService),
		MediaHandler:   handler.NewMediaHandler(storage),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo)
	if err != nil {
		return nil, err
	}

	likeReconcileJob := job.NewLikeCountReconcileJob(likeService)
	cronMgr := cron.NewCronManager(cfg.Cron, likeReconcileJob)

	return &ApplicationContainer{
		Router:       router,
		Session:      session,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
