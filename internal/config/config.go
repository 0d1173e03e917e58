package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"citibike/backend/helper"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort    = 8080
	DefaultDriver  = "bigquery"
	DefaultProject = "vigilant-art-417714"
	DefaultSQL     = `SELECT * FROM bigquery-public-data.new_york_citibike.citibike_trips LIMIT 100`
)

// Environment variables prefixed with "QUERY_" configure the renderer e.g. "QUERY_SQL"
const queryEnvPrefix = "query"

var validate = validator.New()

type Server struct {
	Port  int  `mapstructure:"port" validate:"min=1,max=65535"`
	Debug bool `mapstructure:"debug"`
}

// Addr listens on every interface.
func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Query struct {
	Driver  string `mapstructure:"driver" validate:"oneof=bigquery postgres"`
	Project string `mapstructure:"project"`
	DSN     string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
	SQL     string `mapstructure:"sql" validate:"required"`
	Debug   bool   `mapstructure:"debug"`
}

// Target is what the configured driver connects to.
func (q Query) Target() string {
	if q.Driver == "postgres" {
		return q.DSN
	}
	return q.Project
}

// LoadDotEnv reads .env from the working directory. A missing file is not an
// error; variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func LoadServer() (Server, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("debug", false)
	v.AutomaticEnv()

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return Server{}, fmt.Errorf("invalid server config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Server{}, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

func LoadQuery() (Query, error) {
	v := viper.New()
	v.SetDefault("driver", DefaultDriver)
	v.SetDefault("project", DefaultProject)
	v.SetDefault("dsn", "")
	v.SetDefault("sql", "")
	v.SetDefault("debug", false)
	v.SetEnvPrefix(queryEnvPrefix)
	v.AutomaticEnv()

	var cfg Query
	if err := v.Unmarshal(&cfg); err != nil {
		return Query{}, fmt.Errorf("invalid query config: %w", err)
	}
	cfg.Driver = strings.ToLower(strings.TrimSpace(cfg.Driver))
	// DefaultSQL names a BigQuery public table; other drivers must set QUERY_SQL.
	if cfg.SQL == "" && cfg.Driver == "bigquery" {
		cfg.SQL = DefaultSQL
	}
	if err := validate.Struct(cfg); err != nil {
		return Query{}, fmt.Errorf("invalid query config: %w", err)
	}
	if cfg.Driver == "bigquery" && !helper.IsValidProjectID(cfg.Project) {
		return Query{}, fmt.Errorf("invalid query config: bad project id %q", cfg.Project)
	}
	return cfg, nil
}
