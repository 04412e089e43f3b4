package service

import (
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// newRandomUUID 随机 v4，作为新实体的主键
func newRandomUUID() (gocql.UUID, error) {
	return gocql.ParseUUID(uuid.NewString())
}
