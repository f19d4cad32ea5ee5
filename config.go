package itreap

import (
	"fmt"
	"math/rand/v2"

	"github.com/npillmayer/schuko"
)

const (
	// DefaultBlockSize is the maximum number of elements held by a leaf,
	// if not configured otherwise.
	DefaultBlockSize = 1000
	// MinBlockSize is the smallest block size which allows splitting a full
	// leaf into two non-empty halves.
	MinBlockSize = 2
)

// Configuration keys read by ConfigFrom.
const (
	ConfigKeyBlockSize = "itreap.blocksize"
	ConfigKeySeed      = "itreap.seed"
)

// Config configures an indexed treap.
//
// The zero value is a valid configuration, using DefaultBlockSize and the
// global random generator of math/rand/v2 for priorities.
type Config struct {
	// BlockSize is the maximum number of elements per leaf. The amortized cost
	// of an insertion is O(log(n/BlockSize) + BlockSize).
	BlockSize int
	// Source delivers balancing priorities. A seeded source (e.g. rand.NewPCG)
	// makes tree shapes reproducible. Source is shared, not copied, between
	// treaps using the same Config. A rand.Source is not safe for concurrent
	// use: treaps sharing a non-nil Source must not be mutated from different
	// goroutines at the same time. A nil Source uses the global generator,
	// which is.
	Source rand.Source
}

// DefaultConfig returns the configuration used by New and BuildFrom.
func DefaultConfig() Config {
	return Config{BlockSize: DefaultBlockSize}
}

// ConfigFrom reads a treap configuration from an application configuration.
// Keys not set in conf are left at their defaults.
//
//	itreap.blocksize   maximum number of elements per leaf
//	itreap.seed        seed for a deterministic priority source
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg, nil
	}
	if conf.IsSet(ConfigKeyBlockSize) {
		cfg.BlockSize = conf.GetInt(ConfigKeyBlockSize)
	}
	if conf.IsSet(ConfigKeySeed) {
		seed := uint64(conf.GetInt(ConfigKeySeed))
		cfg.Source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	tracer().Debugf("itreap: configured block size = %d", cfg.BlockSize)
	return cfg, nil
}

func (cfg Config) normalized() Config {
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BlockSize < MinBlockSize {
		return fmt.Errorf("%w: block size %d is less than %d",
			ErrInvalidConfig, cfg.BlockSize, MinBlockSize)
	}
	return nil
}

// priority draws a fresh balancing priority.
func (cfg Config) priority() uint64 {
	if cfg.Source == nil {
		return rand.Uint64()
	}
	return cfg.Source.Uint64()
}
