package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMap     = "logistic"
	DefaultParam   = 2.5
	DefaultSeed    = 0.1
	DefaultSteps   = 100
	DefaultXTol    = 1e-4
	DefaultMaxIter = 500
	DefaultEpsilon = 0.05
	DefaultPeriod  = 8
	DefaultSolver  = "rk4"
	DefaultDt      = 0.01
	DefaultSize    = 60
	DefaultOffset  = 12
)

type Config struct {
	Map     string        `yaml:"map"`
	Param   float64       `yaml:"param"`
	X0      float64       `yaml:"x0"`
	Steps   int           `yaml:"steps"`
	XTol    float64       `yaml:"xtol"`
	MaxIter int           `yaml:"maxiter"`
	Epsilon float64       `yaml:"epsilon"`
	Period  int           `yaml:"period"`
	Solver  string        `yaml:"solver"`
	Dt      float64       `yaml:"dt"`
	Diagram DiagramConfig `yaml:"diagram"`
}

type DiagramConfig struct {
	Size   int `yaml:"size"`
	Offset int `yaml:"offset"`
}

func DefaultConfig() *Config {
	return &Config{
		Map:     DefaultMap,
		Param:   DefaultParam,
		X0:      DefaultSeed,
		Steps:   DefaultSteps,
		XTol:    DefaultXTol,
		MaxIter: DefaultMaxIter,
		Epsilon: DefaultEpsilon,
		Period:  DefaultPeriod,
		Solver:  DefaultSolver,
		Dt:      DefaultDt,
		Diagram: DiagramConfig{
			Size:   DefaultSize,
			Offset: DefaultOffset,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
