package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/scale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		LogLevel    string
		Key         KeyConfig
		Progression ProgressionConfig
		Server      ServerConfig
		Export      ExportConfig
	}

	KeyConfig struct {
		Root             string
		ReferentialScale string
	}

	ProgressionConfig struct {
		NumChords int
		Octave    int
		// 0 seeds from the clock
		Seed int64 `yaml:",omitempty"`
	}

	ServerConfig struct {
		Port           string `yaml:",omitempty"`
		AllowedOrigins []string
		SessionTTL     time.Duration
		SweepDelay     time.Duration
		// idle servers still drop expired sessions this often
		SweepInterval time.Duration
	}

	ExportConfig struct {
		TicksPerQuarter uint16
		BeatsPerChord   int
		Velocity        uint8
	}
)

//go:embed defaults.yml
var defaultConfigYaml []byte

func loadDefaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYaml, &cfg); err != nil {
		panic(errors.Wrap(err, "failed to unmarshal default config"))
	}
	return cfg
}

// Load layers the file at path over the built in defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := loadDefaults()

	bytes, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(bytes, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "could not parse config %s", path)
		}
	case os.IsNotExist(err):
		logrus.WithField("path", path).Debug("no config file, using defaults")
	default:
		return cfg, errors.Wrapf(err, "could not read config %s", path)
	}

	if port, ok := os.LookupEnv("CHORDGEN_PORT"); ok && port != "" {
		cfg.Server.Port = port
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = constants.GetPort()
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.Key.Parse(); err != nil {
		return err
	}
	if c.Progression.NumChords < 0 || c.Progression.NumChords > constants.MaxChords {
		return errors.Errorf("progression.numchords must be between 0 and %d, got %d", constants.MaxChords, c.Progression.NumChords)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "loglevel")
	}
	if c.Export.TicksPerQuarter == 0 || c.Export.BeatsPerChord <= 0 {
		return errors.New("export.ticksperquarter and export.beatsperchord must be positive")
	}
	return nil
}

type Key struct {
	Root             pitchclass.PitchClass
	ReferentialScale scale.ReferentialScale
}

func (k KeyConfig) Parse() (Key, error) {
	root, err := pitchclass.Parse(k.Root)
	if err != nil {
		return Key{}, errors.Wrap(err, "key.root")
	}
	ref, err := scale.ParseReferentialScale(k.ReferentialScale)
	if err != nil {
		return Key{}, errors.Wrap(err, "key.referentialscale")
	}
	return Key{Root: root, ReferentialScale: ref}, nil
}

// Scale builds the configured key.
func (c Config) Scale() (*scale.Scale, error) {
	key, err := c.Key.Parse()
	if err != nil {
		return nil, err
	}
	return scale.New(key.Root, key.ReferentialScale)
}
