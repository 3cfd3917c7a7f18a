package config

import (
	"sync"
	"time"

	"github.com/cartorio-digital/apostille-platform-server/package/env"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	MongoDB MongoDBConfig `json:"mongodb"`
	MinIO   MinIOConfig   `json:"minio"`
	Auth    AuthConfig    `json:"auth"`
}

type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	AppName         string        `json:"app_name"`
	UploadMaxSizeMB int           `json:"upload_max_size_mb"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MongoDBConfig struct {
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type MinIOConfig struct {
	Endpoint   string `json:"endpoint"`
	AccessKey  string `json:"access_key"`
	SecretKey  string `json:"secret_key"`
	BucketName string `json:"bucket_name"`
	UseSSL     bool   `json:"use_ssl"`
}

type AuthConfig struct {
	JWTSecret     string        `json:"jwt_secret"`
	JWTExpiration time.Duration `json:"jwt_expiration"`
	JWTIssuer     string        `json:"jwt_issuer"`
}

var (
	instance *Config
	once     sync.Once
)

// Load reads configuration from the environment once and caches it for
// the lifetime of the process.
func Load() *Config {
	once.Do(func() {
		instance = &Config{
			Server: ServerConfig{
				Host:            env.MustGet("SERVER_HOST", "0.0.0.0"),
				Port:            env.MustGet("SERVER_PORT", 8080),
				AppName:         env.MustGet("APP_NAME", "apostille-platform-server"),
				UploadMaxSizeMB: env.MustGet("UPLOAD_MAX_SIZE_MB", 50),
				ShutdownTimeout: env.MustGet("SHUTDOWN_TIMEOUT", 15*time.Second),
			},
			MongoDB: MongoDBConfig{
				Address:  env.MustGet("MONGODB_ADDRESS", "localhost:27017"),
				Username: env.MustGet("MONGODB_USERNAME", "root"),
				Password: env.MustGet("MONGODB_PASSWORD", "root"),
				Database: env.MustGet("MONGODB_DATABASE", "apostille"),
			},
			MinIO: MinIOConfig{
				Endpoint:   env.MustGet("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey:  env.MustGet("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey:  env.MustGet("MINIO_SECRET_KEY", "minioadmin"),
				BucketName: env.MustGet("MINIO_BUCKET", "documents"),
				UseSSL:     env.MustGet("MINIO_USE_SSL", false),
			},
			Auth: AuthConfig{
				JWTSecret:     env.MustGet("JWT_SECRET", ""),
				JWTExpiration: env.MustGet("JWT_EXPIRATION", 24*time.Hour),
				JWTIssuer:     env.MustGet("JWT_ISSUER", "apostille-platform"),
			},
		}
	})

	return instance
}

// reset clears the cached configuration so tests can reload it.
func reset() {
	instance = nil
	once = sync.Once{}
}
