package config

import "osohub/internal/pkg/minio"

// Config 配置主体
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	Cassandra         CassandraConfig   `mapstructure:"cassandra"`
	MinIO             minio.Config      `mapstructure:"minio"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaPostConsumer KafkaPostConsumer `mapstructure:"kafka_post_consumer"`
	Cron              CronConfig        `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// CassandraConfig Cassandra配置
type CassandraConfig struct {
	Hosts          []string `mapstructure:"hosts"`
	Keyspace       string   `mapstructure:"keyspace"`
	Username       string   `mapstructure:"username"`
	Password       string   `mapstructure:"password"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
	MigrationsPath string   `mapstructure:"migrations_path"`
}

// LogstashConfig 远程日志配置，Address 为空时只写 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaPostConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	LikeReconcileSpec string `mapstructure:"like_reconcile_spec"`
}
