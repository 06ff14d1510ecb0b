package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Query limits baked into the public surface.
const (
	DefaultRecentArticles = 6
	TopContributorsLimit  = 4
	TrendingTagsLimit     = 3
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads .env (values there win over the inherited environment) and
// returns the process configuration. Missing values fall back to defaults;
// required ones are checked by the caller at startup.
func Load() Config {
	_ = godotenv.Overload(".env")

	return Config{
		Port:      getEnv("PORT", "3000"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "knowhive"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		SMTPHost:  getEnv("SMTP_HOST", "localhost"),
		SMTPPort:  getEnvInt("SMTP_PORT", 587),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		MailFrom:  getEnv("MAIL_FROM", "no-reply@knowhive.app"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
