// Package config reads and writes cuadra.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside a ledger directory.
const FileName = "cuadra.yaml"

// EnvConfig overrides the configuration path when set.
const EnvConfig = "CUADRA_CONFIG"

// Config represents the top-level cuadra.yaml configuration.
type Config struct {
	Negocio  NegocioConfig  `yaml:"negocio"`
	Ficheros FicherosConfig `yaml:"ficheros"`
	Git      GitConfig      `yaml:"git"`
}

// NegocioConfig identifies whose books these are.
type NegocioConfig struct {
	Nombre string `yaml:"nombre"`
}

// FicherosConfig locates the input files, relative to the ledger
// directory unless absolute.
type FicherosConfig struct {
	Cuentas        string `yaml:"cuentas,omitempty"`         // account-definition file
	BalanceInicial string `yaml:"balance_inicial,omitempty"` // opening balance file
	DirDiario      string `yaml:"dir_diario"`                // daily entry files
	PGC            bool   `yaml:"pgc"`                       // preload the standard chart
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a cuadra.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Locate returns the config path for a ledger directory, honoring the
// CUADRA_CONFIG override.
func Locate(dir string) string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(dir, FileName)
}

// Resolve makes a configured path absolute relative to the ledger
// directory. Empty paths stay empty.
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(nombre string) *Config {
	return &Config{
		Negocio: NegocioConfig{
			Nombre: nombre,
		},
		Ficheros: FicherosConfig{
			Cuentas:   "cuentas.txt",
			DirDiario: "diario",
			PGC:       false,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Cuadra",
			AuthorEmail: "cuadra@localhost",
		},
	}
}
