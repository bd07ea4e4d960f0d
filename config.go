package orbits

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of conf.toml.
const ConfigEnv = "ORBITS_CONFIG"

var (
	cfgOnce sync.Once
	config  Config
	cfgErr  error
)

// Config is the library configuration.
type Config struct {
	OutputDir   string // where exports are written when the export configuration has no directory
	Body        string // default central body of scenarios
	LocusPoints int    // default locus resolution
}

// DefaultConfig is used when no configuration directory is set.
func DefaultConfig() Config {
	return Config{OutputDir: ".", Body: Unit.Name, LocusPoints: DefaultLocusPoints}
}

func setConfigDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("general.output_path", def.OutputDir)
	v.SetDefault("general.body", def.Body)
	v.SetDefault("locus.points", def.LocusPoints)
}

// LoadConfig reads conf.toml from the provided directory.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	setConfigDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml: %w", dir, err)
	}
	conf := Config{
		OutputDir:   v.GetString("general.output_path"),
		Body:        v.GetString("general.body"),
		LocusPoints: v.GetInt("locus.points"),
	}
	if _, err := CelestialObjectFromString(conf.Body); err != nil {
		return Config{}, err
	}
	if conf.LocusPoints < 2 {
		return Config{}, &InvalidParameterError{"locus.points", float64(conf.LocusPoints)}
	}
	return conf, nil
}

// orbitsConfig returns the configuration found in $ORBITS_CONFIG, or the defaults if it is unset.
func orbitsConfig() (Config, error) {
	cfgOnce.Do(func() {
		confPath := os.Getenv(ConfigEnv)
		if confPath == "" {
			config = DefaultConfig()
			return
		}
		config, cfgErr = LoadConfig(confPath)
	})
	return config, cfgErr
}

// LoadScenario reads a scenario file (TOML, angles in degrees) and returns the scenario and its export settings.
func LoadScenario(path string) (*Scenario, ExportConfig, error) {
	conf, err := orbitsConfig()
	if err != nil {
		return nil, ExportConfig{}, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("orbit.body", conf.Body)
	v.SetDefault("locus.points", conf.LocusPoints)
	if err := v.ReadInConfig(); err != nil {
		return nil, ExportConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	body, err := CelestialObjectFromString(v.GetString("orbit.body"))
	if err != nil {
		return nil, ExportConfig{}, err
	}
	if v.IsSet("orbit.gm") {
		if body, err = NewCelestialObject(body.Name, body.Radius, v.GetFloat64("orbit.gm")); err != nil {
			return nil, ExportConfig{}, err
		}
	}
	radius := body.Radius
	if v.IsSet("orbit.radius") {
		radius = v.GetFloat64("orbit.radius")
	}
	speed := body.CircularSpeed(radius)
	if v.IsSet("state.speed") {
		speed = v.GetFloat64("state.speed")
	}
	mnv := NewManeuver(v.GetFloat64("impulse.magnitude"), Deg2rad(v.GetFloat64("impulse.angle")))

	sc := NewScenario(body, radius, speed, Deg2rad(v.GetFloat64("state.angle")), mnv)
	sc.PositionAngle = Deg2rad(v.GetFloat64("orbit.angle"))
	sc.LocusPoints = v.GetInt("locus.points")
	sc.Polar = v.GetBool("locus.polar")

	exp := ExportConfig{
		Filename:  v.GetString("export.filename"),
		OutputDir: v.GetString("export.output_path"),
		AsCSV:     v.GetBool("export.csv"),
		AsJSON:    v.GetBool("export.json"),
		Timestamp: v.GetBool("export.timestamp"),
	}
	if exp.OutputDir == "" {
		exp.OutputDir = conf.OutputDir
	}
	return sc, exp, nil
}
