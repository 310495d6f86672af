package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Hub configuration for the remote dataset store
	Hub struct {
		// Base URL of the artifact store hosting the datasets
		BaseURL string `env:"HUB_BASE_URL" envDefault:"https://huggingface.co"`

		// Access token used when downloading datasets
		Token string `env:"HF_TOKEN"`

		// Dataset repository holding the sales transactions
		SalesRepo string `env:"SALES_REPO" envDefault:"lemoninabag/Sales"`

		// Dataset repository holding the rental contracts
		RentalsRepo string `env:"RENTALS_REPO" envDefault:"lemoninabag/Rentals"`

		// Download timeout in seconds
		TimeoutSeconds int `env:"HUB_TIMEOUT" envDefault:"120"`
	}

	// Directory where downloaded CSV files are cached
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	// Port the API server listens on
	Port string `env:"PORT" envDefault:"5250"`

	// Allowed CORS origin for the dashboard client
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	// Area preselected by the dashboard
	DefaultArea string `env:"DEFAULT_AREA" envDefault:"Business Bay"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
