package types

type StoreDriver string

const (
	StoreDriverMemory   StoreDriver = "memory"
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverS3       StoreDriver = "s3"
	StoreDriverRedis    StoreDriver = "redis"
)

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	// Collection storage
	StoreDriver StoreDriver `envconfig:"STORE_DRIVER" default:"memory"`
	KeyPrefix   string      `envconfig:"KEY_PREFIX" default:"connect_causa_"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	RedisAddr   string `envconfig:"REDIS_ADDR"`
	RedisDB     int    `envconfig:"REDIS_DB" default:"0"`
}
