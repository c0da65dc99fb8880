package config

import (
	"log"
	"sync"

	"github.com/cristalhq/aconfig"
)

type Config struct {
	Port          string `env:"PORT" default:"5000"`
	MongoURI      string `env:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" default:"newshub"`

	NewsAPIKey     string `env:"NEWS_API_KEY"`
	NewsAPIBaseURL string `env:"NEWS_API_BASE_URL" default:"https://newsapi.org/v2"`
	NewsQuery      string `env:"NEWS_QUERY" default:"volunteering"`

	AuthJWTSecret   string `env:"AUTH_JWT_SECRET"`
	AuthJWTIssuer   string `env:"AUTH_JWT_ISSUER"`
	AuthJWTAudience string `env:"AUTH_JWT_AUDIENCE"`

	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         int    `env:"SMTP_PORT" default:"587"`
	SMTPUsername     string `env:"SMTP_USERNAME"`
	SMTPPassword     string `env:"SMTP_PASSWORD"`
	ContactRecipient string `env:"CONTACT_RECIPIENT"`
}

var (
	cfg  Config
	once sync.Once
)

// Get loads the configuration from the environment exactly once.
// A .env file, if present, is loaded by main before the first call.
func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			SkipFiles: true,
			SkipFlags: true,
		})
		if err := loader.Load(); err != nil {
			log.Printf("[ERROR] failed to load config: %v", err)
		}
	})

	return cfg
}
