package cassandra

import (
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/gocql/gocql"
	"github.com/golang-migrate/migrate/v4"
	migratec "github.com/golang-migrate/migrate/v4/database/cassandra"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"osohub/internal/api/config"
)

// NewSession 建立 Cassandra 会话，按依赖注入传递而不是挂全局变量
func NewSession(cfg config.CassandraConfig, observer gocql.QueryObserver) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum

	if cfg.TimeoutSeconds > 0 {
		cluster.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	if observer != nil {
		cluster.QueryObserver = observer
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cassandra: %w", err)
	}
	return session, nil
}

// Migrate 启动时应用 schema 迁移，已是最新版本时静默返回
func Migrate(session *gocql.Session, cfg config.CassandraConfig) error {
	driver, err := migratec.WithInstance(session, &migratec.Config{
		KeyspaceName:          cfg.Keyspace,
		MultiStatementEnabled: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	path := cfg.MigrationsPath
	if path == "" {
		path = "migrations/cassandra"
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", path), "cassandra", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	version, _, _ := migrator.Version()
	log.Info("cassandra schema migrated", "version", version)
	return nil
}
