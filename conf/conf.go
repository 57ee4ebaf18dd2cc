package conf

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the server needs besides secrets. Secrets
// (the JWT signing key) come from the environment only.
type Config struct {
	HTTPAddress string `toml:"http_address" validate:"required"`

	AWSRegion string `toml:"aws_region" validate:"required"`

	EventsTable   string `toml:"events_table" validate:"required"`
	CriteriaTable string `toml:"criteria_table" validate:"required"`
	AwardsTable   string `toml:"awards_table" validate:"required"`
	ScoresTable   string `toml:"scores_table" validate:"required"`
	UsersTable    string `toml:"users_table" validate:"required"`

	PosterBucket string `toml:"poster_bucket"`
	ExportBucket string `toml:"export_bucket"`

	// Optional queue for the submitted-score feed. Empty disables the feed.
	ScoreFeedQueueURL string `toml:"score_feed_queue_url"`

	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

func Default() Config {
	return Config{
		HTTPAddress:   ":8080",
		AWSRegion:     "ap-southeast-1",
		EventsTable:   "KultouraEvents",
		CriteriaTable: "KultouraEventCriteria",
		AwardsTable:   "KultouraSpecialAwards",
		ScoresTable:   "KultouraJudgingScores",
		UsersTable:    "KultouraUsers",
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
		},
	}
}

// Load reads the TOML config at path, applies KULTOURA_* environment
// overrides and validates the result. A missing file is not an error;
// defaults plus env are enough for local development.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrides := map[string]*string{
		"KULTOURA_HTTP_ADDRESS":         &cfg.HTTPAddress,
		"KULTOURA_AWS_REGION":           &cfg.AWSRegion,
		"KULTOURA_EVENTS_TABLE":         &cfg.EventsTable,
		"KULTOURA_CRITERIA_TABLE":       &cfg.CriteriaTable,
		"KULTOURA_AWARDS_TABLE":         &cfg.AwardsTable,
		"KULTOURA_SCORES_TABLE":         &cfg.ScoresTable,
		"KULTOURA_USERS_TABLE":          &cfg.UsersTable,
		"KULTOURA_POSTER_BUCKET":        &cfg.PosterBucket,
		"KULTOURA_EXPORT_BUCKET":        &cfg.ExportBucket,
		"KULTOURA_SCORE_FEED_QUEUE_URL": &cfg.ScoreFeedQueueURL,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}
