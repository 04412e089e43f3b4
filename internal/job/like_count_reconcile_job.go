package job

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"

	"osohub/internal/pkg/logger"
	"osohub/internal/service"
)

// LikeCountReconcileJob 定期重数点赞行，修正计数器漂移
type LikeCountReconcileJob struct {
	likeSvc service.LikeService
}

func NewLikeCountReconcileJob(likeSvc service.LikeService) *LikeCountReconcileJob {
	return &LikeCountReconcileJob{
		likeSvc: likeSvc,
	}
}

func (s *LikeCountReconcileJob) Run() {
	traceID := "job-like-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "start like count reconcile job")

	fixed, err := s.likeSvc.ReconcileCounts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "like count reconcile error", "err", err)
		return
	}

	log.InfoContext(ctx, "like count reconcile job finished", "fixed_count", fixed)
}
