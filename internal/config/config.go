package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings. The write timeout is generous
// because topic generation holds the request open across completion calls.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// RedisConfig holds key-value store connection settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-required:"true"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds session token settings. The signing secret is supplied
// externally so it can be rotated without a rebuild.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string        `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"linguacourse"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"168h"`
}

// LLMConfig holds completion provider settings.
type LLMConfig struct {
	APIKey          string  `yaml:"api_key"           env:"LLM_API_KEY"           env-required:"true"`
	Model           string  `yaml:"model"             env:"LLM_MODEL"             env-default:"claude-sonnet-4-5"`
	Temperature     float64 `yaml:"temperature"       env:"LLM_TEMPERATURE"       env-default:"0.7"`
	TitleMaxTokens  int64   `yaml:"title_max_tokens"  env:"LLM_TITLE_MAX_TOKENS"  env-default:"1024"`
	LessonMaxTokens int64   `yaml:"lesson_max_tokens" env:"LLM_LESSON_MAX_TOKENS" env-default:"2048"`
	QuizMaxTokens   int64   `yaml:"quiz_max_tokens"   env:"LLM_QUIZ_MAX_TOKENS"   env-default:"2048"`
	ReplyMaxTokens  int64   `yaml:"reply_max_tokens"  env:"LLM_REPLY_MAX_TOKENS"  env-default:"1024"`
}

// GenerationConfig holds pipeline settings.
type GenerationConfig struct {
	TopicsPerRequest int           `yaml:"topics_per_request" env:"GEN_TOPICS_PER_REQUEST" env-default:"5"`
	QuizPerTopic     int           `yaml:"quiz_per_topic"     env:"GEN_QUIZ_PER_TOPIC"     env-default:"5"`
	PendingRetention time.Duration `yaml:"pending_retention"  env:"GEN_PENDING_RETENTION"  env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
