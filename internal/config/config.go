package config

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/ecopoints/internal/domain"
)

type Config struct {
	RunAddress   string `env:"RUN_ADDRESS"`
	DatabasePath string `env:"DATABASE_PATH"`
	PointRates   string `env:"POINT_RATES"`
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, отсутствие файла не ошибка
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if _, ratesErr := conf.Rates(); ratesErr != nil {
		return nil, ratesErr
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// Rates возвращает таблицу ставок начисления. Пустая настройка дает таблицу по
// умолчанию; переопределение передается JSON-объектом вида {"recyclable": "2.5"}.
func (c *Config) Rates() (domain.RateTable, error) {
	if c.PointRates == "" {
		return domain.DefaultRateTable(), nil
	}

	var overrides map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(c.PointRates), &overrides); err != nil {
		return nil, fmt.Errorf("parse point rates: %s", err.Error())
	}

	rates := domain.DefaultRateTable()
	for wasteType, rate := range overrides {
		rates[domain.WasteType(wasteType)] = rate
	}
	return rates, nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabasePath, "d", "", "LevelDB directory, blank for in-memory store")
	flag.StringVar(&flagConfig.PointRates, "r", "", "Point rate overrides as JSON object")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:   defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabasePath: defaultIfBlank(envConfig.DatabasePath, flagsConfig.DatabasePath),
		PointRates:   defaultIfBlank(envConfig.PointRates, flagsConfig.PointRates),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
