package config

import (
	"fmt"
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	DBDSN   string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		user := envOr("DB_USER", "root")
		pass := os.Getenv("DB_PASS")
		host := envOr("DB_HOST", "127.0.0.1:3306")
		name := envOr("DB_NAME", "rentacar")
		dsn = fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
			user, pass, host, name)
	}

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,
		DBDSN:   dsn,
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
