package handler

import (
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"osohub/internal/api/dto"
	"osohub/internal/pkg/minio"
	"osohub/internal/pkg/response"
	"osohub/internal/pkg/util"
	"osohub/internal/service"
)

type MediaHandler struct {
	storage *minio.Client
}

func NewMediaHandler(storage *minio.Client) *MediaHandler {
	return &MediaHandler{
		storage: storage,
	}
}

// Upload 只接受图片，对象名带日期前缀避免单目录膨胀
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := s.storage.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, dto.MediaUploadResult{URL: s.storage.GetPublicURL(fileKey)})
}
