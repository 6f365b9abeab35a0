package config

import "github.com/caarlos0/env/v9"

// Config is built once at startup and passed explicitly to each collaborator.
// Every key has a local-dev default; an empty credential selects the matching
// demo/disabled mode.
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPassword string `env:"DB_PASS" envDefault:""`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"` // plain host, tcp(host:3306) or unix(/cloudsql/instance)
	DBName     string `env:"DB_NAME" envDefault:"foodlink"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	PaystackSecret    string `env:"PAYSTACK_SECRET" envDefault:""`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID" envDefault:""`
	GeminiAPIKey      string `env:"GEMINI_API_KEY" envDefault:""`
	GeminiModel       string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	StorageBucket     string `env:"STORAGE_BUCKET" envDefault:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
