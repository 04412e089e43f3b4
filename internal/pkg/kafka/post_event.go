package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/gocql/gocql"
	"github.com/pkg/errors"
)

const (
	PostCreated = "POST_CREATED"
	PostDeleted = "POST_DELETED"
)

// PostEvent 帖子生命周期事件，驱动 date_bucket / keyword 视图的物化
type PostEvent struct {
	Type        string     `json:"type"`
	PostID      gocql.UUID `json:"post_id"`
	UserID      gocql.UUID `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ImageURLs   []string   `json:"image_urls"`
	Keywords    []string   `json:"keywords"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DateBucket 按创建日期取天级分桶
func (e *PostEvent) DateBucket() string {
	return e.CreatedAt.UTC().Format("2006-01-02")
}

// ToPostEvent 将 kafka 消息解析为帖子事件
func ToPostEvent(msg *sarama.ConsumerMessage) (*PostEvent, error) {
	var event PostEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal post event")
	}

	if event.Type != PostCreated && event.Type != PostDeleted {
		return nil, errors.Errorf("unknown post event type: %s", event.Type)
	}

	return &event, nil
}
