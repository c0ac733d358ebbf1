package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL        string
	Token          string
	Language       string
	FallbackLang   string
	Region         string
	TimeoutSeconds int
}

type Providers struct {
	// SynonymsPath points to a JSON file with extra service-name synonyms.
	// Empty means built-in defaults only.
	SynonymsPath string
}

type Config struct {
	HTTP      HTTPServer
	Redis     RedisCache
	Postgres  Postgres
	Catalog   Catalog
	Providers Providers
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Catalog:   *newCatalog(),
		Providers: *newProviders(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "reelmatch"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL:        getenv("CATALOG_BASE_URL", "https://api.themoviedb.org/3"),
		Token:          getenv("CATALOG_TOKEN", ""),
		Language:       getenv("CATALOG_LANGUAGE", "da-DK"),
		FallbackLang:   getenv("CATALOG_FALLBACK_LANGUAGE", "en-US"),
		Region:         getenv("CATALOG_REGION", "DK"),
		TimeoutSeconds: getenvInt("CATALOG_TIMEOUT_SECONDS", 10),
	}
}

func newProviders() *Providers {
	return &Providers{
		SynonymsPath: getenv("PROVIDER_SYNONYMS_PATH", ""),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	var n int
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		log.Printf("%s %s malformed (%q). Using default value %d", logtag, key, val, defaultValue)
		return defaultValue
	}
	return n
}
