package app

import (
	"time"

	"github.com/shoply/admin-backend/internal/cache"
	"github.com/shoply/admin-backend/internal/pkg/envutil"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type Config struct {
	Port         string
	ServiceName  string
	Environment  string
	Version      string
	ClientOrigin string
	RedisAddr    string

	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	SummaryCacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	serviceName := envutil.GetEnv("SERVICE_NAME", "shoply-admin", log)
	environment := envutil.GetEnv("ENVIRONMENT", "development", log)
	version := envutil.GetEnv("SERVICE_VERSION", "dev", log)
	clientOrigin := envutil.GetEnv("CLIENT_ORIGIN", "", log)
	redisAddr := envutil.GetEnv("REDIS_ADDR", "", log)
	jwtSecretKey := envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := envutil.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	summaryCacheTTLSeconds := envutil.GetEnvAsInt("SUMMARY_CACHE_TTL", int(cache.DefaultSummaryTTL.Seconds()), log)
	return Config{
		Port:            port,
		ServiceName:     serviceName,
		Environment:     environment,
		Version:         version,
		ClientOrigin:    clientOrigin,
		RedisAddr:       redisAddr,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		SummaryCacheTTL: time.Duration(summaryCacheTTLSeconds) * time.Second,
	}
}
