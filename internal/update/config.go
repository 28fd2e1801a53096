package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type RuntimeConfig struct {
	Store                string `toml:"store"`
	DefaultFilter        string `toml:"default_filter"`
	DateLayout           string `toml:"date_layout"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	LogFile              string `toml:"log_file"`
	LogLevel             string `toml:"log_level"`
	Density              int    `toml:"density"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Store:                StoreMemory,
		DefaultFilter:        string(domainmodel.FilterAll),
		DateLayout:           domainmodel.DisplayLayout,
		DesktopNotifications: false,
		LogFile:              "",
		LogLevel:             "info",
		Density:              1,
	}
}

// LoadRuntimeConfigFile overlays the TOML file at path on base. Keys absent
// from the file keep their base value; unknown keys are rejected.
func LoadRuntimeConfigFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return base, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKGRID_STORE"); ok {
		cfg.Store = v
	}
	if v, ok := getEnvString("TASKGRID_DEFAULT_FILTER"); ok {
		cfg.DefaultFilter = v
	}
	if v, ok := getEnvString("TASKGRID_DATE_LAYOUT"); ok {
		cfg.DateLayout = v
	}
	if v, ok := getEnvBool("TASKGRID_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvString("TASKGRID_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TASKGRID_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvInt("TASKGRID_DENSITY"); ok && v > 0 {
		cfg.Density = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown store backend %q (want %s or %s)", c.Store, StoreMemory, StoreSQLite)
	}
	if _, err := domainmodel.ParseFilterMode(c.DefaultFilter); err != nil {
		return fmt.Errorf("config: default_filter: %w", err)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return fmt.Errorf("config: date_layout is empty")
	}
	if c.Density < 1 || c.Density > maxDensity {
		return fmt.Errorf("config: density must be between 1 and %d, got %d", maxDensity, c.Density)
	}
	return nil
}

func (c RuntimeConfig) filterMode() domainmodel.FilterMode {
	mode, err := domainmodel.ParseFilterMode(c.DefaultFilter)
	if err != nil {
		return domainmodel.FilterAll
	}
	return mode
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
