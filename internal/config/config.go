package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort       string
	AppBaseURL    string
	DBDSN         string
	JWTSecret     string
	JWTExpiresMin int
	// Refresh tokens outlive access tokens; default one week.
	JWTRefreshExpiresMin int
	VerifyTokenTTLMin    int
	UploadDir            string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	RedisAddr     string
	RedisPassword string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "15"))
	refreshExpires, _ := strconv.Atoi(get("JWT_REFRESH_EXPIRES_MIN", "10080"))
	verifyTTL, _ := strconv.Atoi(get("VERIFY_TOKEN_TTL_MIN", "60"))
	smtpPort, _ := strconv.Atoi(get("SMTP_PORT", "587"))
	return Config{
		AppPort:              get("APP_PORT", "8080"),
		AppBaseURL:           get("APP_BASE_URL", "http://localhost:8080"),
		DBDSN:                must("DB_DSN"),
		JWTSecret:            must("JWT_SECRET"),
		JWTExpiresMin:        expires,
		JWTRefreshExpiresMin: refreshExpires,
		VerifyTokenTTLMin:    verifyTTL,
		UploadDir:            get("UPLOAD_DIR", "./uploads"),
		SMTPHost:             get("SMTP_HOST", ""),
		SMTPPort:             smtpPort,
		SMTPUsername:         get("SMTP_USERNAME", ""),
		SMTPPassword:         get("SMTP_PASSWORD", ""),
		SMTPFrom:             get("SMTP_FROM", "no-reply@careerboard.local"),
		RedisAddr:            get("REDIS_ADDR", ""),
		RedisPassword:        get("REDIS_PASSWORD", ""),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
