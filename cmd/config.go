package cmd

import "time"

// Config carries the environment-driven settings for the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSignKey string
	JWTIssuer  string
	JWTTTL     time.Duration
}
