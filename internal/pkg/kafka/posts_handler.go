package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"

	"osohub/internal/model"
	"osohub/internal/repository"
)

// PostsHandler 消费帖子事件，把 date_bucket 和 keyword 两张视图补齐
type PostsHandler struct {
	postRepo repository.PostRepo
}

func NewPostsHandler(postRepo repository.PostRepo) *PostsHandler {
	return &PostsHandler{
		postRepo: postRepo,
	}
}

func (s *PostsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer setup")
	return nil
}

func (s *PostsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer cleanup")
	return nil
}

func (s *PostsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-post consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-post process batch error", "err", err)
		return err
	}
	return nil
}

func (s *PostsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToPostEvent(msg)
	if err != nil {
		// 脏消息直接丢弃，重试也不会变好
		log.ErrorContext(ctx, "drop malformed post event", "err", err)
		return nil
	}

	switch event.Type {
	case PostCreated:
		return s.handleCreated(ctx, event)
	case PostDeleted:
		return s.handleDeleted(ctx, event)
	default:
		return nil
	}
}

func (s *PostsHandler) handleCreated(ctx context.Context, event *PostEvent) error {
	byDate := &model.PostByDateBucket{
		DateBucket:  event.DateBucket(),
		CreatedAt:   event.CreatedAt,
		PostID:      event.PostID,
		UserID:      event.UserID,
		Title:       event.Title,
		Description: event.Description,
		ImageURLs:   event.ImageURLs,
	}
	if err := s.postRepo.CreateByDateBucket(ctx, byDate); err != nil {
		return err
	}

	for _, keyword := range event.Keywords {
		byKeyword := &model.PostByKeyword{
			Keyword:   keyword,
			CreatedAt: event.CreatedAt,
			PostID:    event.PostID,
			UserID:    event.UserID,
		}
		if err := s.postRepo.CreateByKeyword(ctx, byKeyword); err != nil {
			return err
		}
	}

	log.InfoContext(ctx, "post views materialized", "postID", event.PostID.String(), "keywords", len(event.Keywords))
	return nil
}

func (s *PostsHandler) handleDeleted(ctx context.Context, event *PostEvent) error {
	if err := s.postRepo.DeleteByDateBucket(ctx, event.DateBucket(), event.CreatedAt, event.PostID); err != nil {
		return err
	}

	for _, keyword := range event.Keywords {
		if err := s.postRepo.DeleteByKeyword(ctx, keyword, event.CreatedAt, event.PostID); err != nil {
			return err
		}
	}

	log.InfoContext(ctx, "post views removed", "postID", event.PostID.String())
	return nil
}
