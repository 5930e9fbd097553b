package config

import (
	"log"
	"os"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string
	WAPhone  string // WhatsApp recipient, digits with country code
	Business string // banner shown in the order message header
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "superstar.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./superstar.log"
	}
	phone := os.Getenv("WA_PHONE")
	if phone == "" {
		phone = "918007835556"
	}
	business := os.Getenv("BUSINESS_NAME")
	if business == "" {
		business = "Super Star Agencies"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile, WAPhone: phone, Business: business}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s WA_PHONE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.WAPhone)
	return cfg
}
