package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"osohub/internal/service"
)

// uuidParam 解析路径中的 UUID 参数
func uuidParam(c *gin.Context, name string) (gocql.UUID, error) {
	id, err := gocql.ParseUUID(c.Param(name))
	if err != nil {
		return gocql.UUID{}, service.ErrParamInvalid
	}
	return id, nil
}

// uuidQuery 解析查询串中的 UUID 参数
func uuidQuery(c *gin.Context, name string) (gocql.UUID, error) {
	id, err := gocql.ParseUUID(c.Query(name))
	if err != nil {
		return gocql.UUID{}, service.ErrParamInvalid
	}
	return id, nil
}

// limitQuery 解析 limit 查询参数，缺省用 def
func limitQuery(c *gin.Context, def int) (int, error) {
	raw := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, service.ErrParamInvalid
	}
	return limit, nil
}
