package ore

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config is the launcher's optional configuration file shape. Fields the
// file leaves unset keep DefaultConfig's values, so an absent -config flag
// is equivalent to an empty config file.
type Config struct {
	// Bootloader overrides the bootloader file name (default "bootloader").
	Bootloader string `yaml:"bootloader"`
	// StackSize overrides the root frame's stack capacity when the loaded
	// module's own declared stack usage is zero (default 256).
	StackSize int64 `yaml:"stackSize"`
	// Trace, if true, makes the launcher print each instruction the
	// interpreter steps through on standard error.
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns the launcher's hardcoded defaults.
func DefaultConfig() Config {
	return Config{Bootloader: "bootloader", StackSize: 256}
}

// LoadConfig reads and parses a YAML config file at path, starting from
// DefaultConfig so unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
