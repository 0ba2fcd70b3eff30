package config

import (
	"os"
	"path/filepath"
	"time"
)

// BuildVersion is set at build time with -ldflags "-X .../internal/config.BuildVersion=..."
var BuildVersion = "0.0.0-local"

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Log         struct {
		Color      bool   `env:"LOG_COLOR"       flag:"log-color"`
		FolderPath string `env:"LOG_FOLDER_PATH" flag:"log-folder-path" validate:"omitempty,dirpath" desc:"enables file logging and sets the folder path"`
		IsProd     bool   `env:"LOG_IS_PROD"     flag:"log-is-prod"                                desc:"affects the format of the log output"`
		JSON       bool   `env:"LOG_JSON"        flag:"log-json"`
		LevelApp   string `env:"LOG_LEVEL_APP"   flag:"log-level-app"   validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelHTTP  string `env:"LOG_LEVEL_HTTP"  flag:"log-level-http"  validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Runtime struct {
		SettingsFile   string `env:"RUNTIME_SETTINGS_FILE"   flag:"settings-file"   desc:"path to the runtime settings file (.yaml, .yml or .json)"`
		UserDir        string `env:"RUNTIME_USER_DIR"        flag:"user-dir"        desc:"directory holding flows, credentials and projects config, unless overridden by the userDir setting"`
		PackageManager string `env:"RUNTIME_PACKAGE_MANAGER" flag:"package-manager"                               desc:"binary used to install palette modules, the palette editor is disabled if not found"`
	}
	Storage struct {
		GitUserCacheTTL time.Duration `env:"STORAGE_GIT_USER_CACHE_TTL" flag:"git-user-cache-ttl" validate:"gte=0"               desc:"how long the global git user is cached"`
	}
	Web struct {
		Address         string        `env:"WEB_ADDRESS"          flag:"web-address"          validate:"required,hostname_port" desc:"http server address host:port"`
		PublicUrl       string        `env:"WEB_PUBLIC_URL"       flag:"web-public-url"       validate:"omitempty,url"          desc:"public url of the editor api, falls back to web-address if empty"`
		ShutdownTimeout time.Duration `env:"WEB_SHUTDOWN_TIMEOUT" flag:"web-shutdown-timeout" validate:"gte=0"                    desc:"time to wait for in-flight requests on shutdown"`
	}
}

func (cfg *Config) SetDefaults() {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Log

	if cfg.Log.LevelApp == "" {
		cfg.Log.LevelApp = "debug"
	}
	if cfg.Log.LevelHTTP == "" {
		cfg.Log.LevelHTTP = "info"
	}

	// Runtime

	if cfg.Runtime.UserDir == "" {
		cfg.Runtime.UserDir = defaultUserDir()
	}
	if cfg.Runtime.SettingsFile == "" {
		cfg.Runtime.SettingsFile = filepath.Join(cfg.Runtime.UserDir, "settings.yaml")
	}
	if cfg.Runtime.PackageManager == "" {
		cfg.Runtime.PackageManager = "npm"
	}

	// Storage

	if cfg.Storage.GitUserCacheTTL == 0 {
		cfg.Storage.GitUserCacheTTL = time.Minute
	}

	// Web

	if cfg.Web.Address == "" {
		cfg.Web.Address = "0.0.0.0:1880"
	}
	if cfg.Web.PublicUrl == "" {
		cfg.Web.PublicUrl = "http://localhost:1880"
	}
	if cfg.Web.ShutdownTimeout == 0 {
		cfg.Web.ShutdownTimeout = 10 * time.Second
	}
}

func defaultUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flow-editor"
	}
	return filepath.Join(home, ".flow-editor")
}

// GetSanitized returns a copy of the config with sensitive data removed
// explicitly adding each field here to avoid accidentally leaking sensitive data
func (cfg *Config) GetSanitized() interface{} {
	publicCfg := Config{}

	publicCfg.Environment = cfg.Environment

	publicCfg.Log.Color = cfg.Log.Color
	publicCfg.Log.IsProd = cfg.Log.IsProd
	publicCfg.Log.JSON = cfg.Log.JSON
	publicCfg.Log.LevelApp = cfg.Log.LevelApp
	publicCfg.Log.LevelHTTP = cfg.Log.LevelHTTP

	publicCfg.Runtime.PackageManager = cfg.Runtime.PackageManager

	publicCfg.Storage.GitUserCacheTTL = cfg.Storage.GitUserCacheTTL

	publicCfg.Web.Address = cfg.Web.Address
	publicCfg.Web.PublicUrl = cfg.Web.PublicUrl
	publicCfg.Web.ShutdownTimeout = cfg.Web.ShutdownTimeout

	return publicCfg
}
