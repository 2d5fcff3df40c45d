package config

// Config is the root application configuration.
type Config struct {
	Dict DictConfig `yaml:"dict"`
	Log  LogConfig  `yaml:"log"`
}

// DictConfig holds the dictionary root overrides, searched in order:
// local, data (per-user), system. Empty fields keep the defaults from the
// locator package, so that list stays the single source of truth for the
// search locations.
type DictConfig struct {
	LocalDir  string `yaml:"local_dir"  env:"DIBBLE_DICT_LOCAL_DIR"`
	DataDir   string `yaml:"data_dir"   env:"DIBBLE_DICT_DATA_DIR"`
	SystemDir string `yaml:"system_dir" env:"DIBBLE_DICT_SYSTEM_DIR"`
}

// LogConfig holds logging settings. The default level is warn so a normal
// lookup prints nothing but its result.
type LogConfig struct {
	Level  string `yaml:"level"  env:"DIBBLE_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"DIBBLE_LOG_FORMAT" env-default:"text"`
}
