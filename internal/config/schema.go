// SPDX-License-Identifier: MIT
package config

// Config is the top-level YAML structure of ccount.
type Config struct {
	Log     LogConf     `yaml:"log"`
	Counter CounterConf `yaml:"counter"`
	Input   InputConf   `yaml:"input"`
	Metrics MetricsConf `yaml:"metrics"`
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// CounterConf selects how components are counted.
type CounterConf struct {
	Strategy string `yaml:"strategy"` // dfs|unionfind|parallel
	Workers  int    `yaml:"workers"`  // parallel only; 0 = GOMAXPROCS
}

// InputConf controls edge-list parsing.
type InputConf struct {
	Strict bool `yaml:"strict"`
}

// MetricsConf controls metric export. An empty Textfile disables it.
type MetricsConf struct {
	Textfile string `yaml:"textfile"`
}

// Strategy names accepted by CounterConf.Strategy.
const (
	StrategyDFS       = "dfs"
	StrategyUnionFind = "unionfind"
	StrategyParallel  = "parallel"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Counter.Strategy == "" {
		cfg.Counter.Strategy = StrategyDFS
	}
}
