package digest

import (
	"oaat/pkg/hashkit"
	"oaat/pkg/log"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// errors
var (
	ErrConfRing  = errors.New("ring nodes and spots length mismatch")
	ErrConfBench = errors.New("bench keys must be positive")
)

// Config oaat config.
type Config struct {
	*log.Config
	Method string
	Ring   struct {
		Nodes []string
		Spots []int
	}
	Bench struct {
		Keys int
	}
}

// DefaultConfig new config by default string.
func DefaultConfig() *Config {
	c := &Config{Config: &log.Config{}}
	if _, err := toml.Decode(defaultConfig, c); err != nil {
		panic(err)
	}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// LoadFromFile load from file, fields missing in the file keep their default.
func (c *Config) LoadFromFile(path string) error {
	if c.Config == nil {
		c.Config = &log.Config{}
	}
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "Load From File:%s", path)
	}
	return c.Validate()
}

// Validate validate config field value.
func (c *Config) Validate() error {
	if _, err := hashkit.Lookup(c.Method); err != nil {
		return err
	}
	if len(c.Ring.Nodes) != len(c.Ring.Spots) {
		return errors.Wrapf(ErrConfRing, "nodes:%d spots:%d", len(c.Ring.Nodes), len(c.Ring.Spots))
	}
	if c.Bench.Keys <= 0 {
		return errors.WithStack(ErrConfBench)
	}
	return nil
}

const defaultConfig = `
##################################################
#                                                #
#                      oaat                      #
#       Jenkins one-at-a-time hash toolkit       #
#                                                #
##################################################

# When set, log to stdout.
debug = false

# Log file base path, rolled daily. Empty disables file logging.
log = ""

# Log verbose level.
log_vl = 0

# Default hash method used by sum and ring.
method = "one_at_a_time"

[ring]
# Ketama ring members and their weights.
nodes = []
spots = []

[bench]
# Number of generated keys hashed by bench.
keys = 100000
`
