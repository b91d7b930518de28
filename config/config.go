package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/meghashyamc/dreamgolf/controller"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/session"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/trajectory"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
	path   string
}

// Load reads config/config.<env>.yaml from the project root. A missing file
// is not fatal: environment variables and built-in defaults still apply.
func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		configPath = ""
	}

	return load(configPath)
}

// LoadFile reads an explicit config file.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	viperConfig := viper.New()
	if len(configPath) > 0 {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
			configPath = ""
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
		path:   configPath,
	}

	return cfg, nil
}

// Path is the config file in use, empty when running on env and defaults.
func (c *Config) Path() string {
	return c.path
}

// Watch hands fn freshly decoded tunings whenever the config file changes on
// disk. fn runs on the watcher goroutine, right after viper re-reads the
// file, so the caller never has to touch the Config from another goroutine.
// Edits that fail validation are logged and skipped.
func (c *Config) Watch(fn func(session.Tunings)) {
	if len(c.path) == 0 {
		return
	}
	c.config.OnConfigChange(func(e fsnotify.Event) {
		c.changed(e, fn)
	})
	c.config.WatchConfig()
}

func (c *Config) changed(e fsnotify.Event, fn func(session.Tunings)) {
	slog.Info("config file changed", "file", e.Name, "op", e.Op.String())
	tunings, err := c.Tunings()
	if err != nil {
		slog.Warn("ignoring invalid config change", "file", e.Name, "err", err.Error())
		return
	}
	fn(tunings)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth == 0 {
		windowWidth = 960
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight == 0 {
		windowHeight = 640
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = "Dream Golf"
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetDataDir() string {
	dataDir := c.config.GetString("DATA_DIR")
	if len(dataDir) == 0 {
		dataDir = c.config.GetString("data.dir")
	}

	return dataDir
}

// GetCoursePath resolves the course file against the project root when it
// is relative.
func (c *Config) GetCoursePath() string {
	coursePath := c.config.GetString("COURSE_PATH")
	if len(coursePath) == 0 {
		coursePath = c.config.GetString("course.path")
	}
	if len(coursePath) == 0 || filepath.IsAbs(coursePath) {
		return coursePath
	}
	if root, err := getProjectRoot(); err == nil {
		return filepath.Join(root, coursePath)
	}

	return coursePath
}

func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}
	if c.config.IsSet("audio.enabled") {
		return c.config.GetBool("audio.enabled")
	}

	return true
}

func (c *Config) ShotTuning() (shot.Tuning, error) {
	t := shot.DefaultTuning()
	if err := c.section("shot", &t); err != nil {
		return shot.DefaultTuning(), err
	}
	return t, t.Validate()
}

func (c *Config) BoostTuning() (controller.BoostTuning, error) {
	t := controller.DefaultBoostTuning()
	if err := c.section("boost", &t); err != nil {
		return controller.DefaultBoostTuning(), err
	}
	return t, t.Validate()
}

func (c *Config) TrajectoryTuning() (trajectory.Tuning, error) {
	t := trajectory.DefaultTuning()
	if err := c.section("trajectory", &t); err != nil {
		return trajectory.DefaultTuning(), err
	}
	return t, t.Validate()
}

func (c *Config) PhysicsTuning() (physics.Tuning, error) {
	t := physics.DefaultTuning()
	if err := c.section("physics", &t); err != nil {
		return physics.DefaultTuning(), err
	}
	return t, t.Validate()
}

func (c *Config) UITuning() (session.UITuning, error) {
	t := session.DefaultUITuning()
	if err := c.section("ui", &t); err != nil {
		return session.DefaultUITuning(), err
	}
	return t, t.Validate()
}

// Tunings gathers every tuning section.
func (c *Config) Tunings() (session.Tunings, error) {
	var (
		t   session.Tunings
		err error
	)
	if t.Shot, err = c.ShotTuning(); err != nil {
		return t, fmt.Errorf("shot tuning: %w", err)
	}
	if t.Boost, err = c.BoostTuning(); err != nil {
		return t, fmt.Errorf("boost tuning: %w", err)
	}
	if t.Trajectory, err = c.TrajectoryTuning(); err != nil {
		return t, fmt.Errorf("trajectory tuning: %w", err)
	}
	if t.Physics, err = c.PhysicsTuning(); err != nil {
		return t, fmt.Errorf("physics tuning: %w", err)
	}
	if t.UI, err = c.UITuning(); err != nil {
		return t, fmt.Errorf("ui tuning: %w", err)
	}
	return t, nil
}

// section decodes a yaml section over out, leaving fields the file does not
// mention at their current values.
func (c *Config) section(key string, out interface{}) error {
	if !c.config.IsSet(key) {
		return nil
	}
	if err := c.config.UnmarshalKey(key, out); err != nil {
		return fmt.Errorf("failed to decode %s section: %w", key, err)
	}
	return nil
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
