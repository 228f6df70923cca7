package config

import (
	"reflect"
	"strings"

	"netcollector/core/database"
	"netcollector/core/logger"
	"netcollector/core/server"
	"netcollector/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used as a template source.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the inventory database.
	Database database.Config `mapstructure:"database"`
	// Collector holds configuration for parsing and reconciliation.
	Collector CollectorConfig `mapstructure:"collector"`
}

// CollectorConfig holds the template, rule index and reconciliation settings.
type CollectorConfig struct {
	// TemplateSource selects where templates are read from (dir, bucket).
	TemplateSource string `mapstructure:"template_source" default:"dir"`
	// TemplatesDir is the directory holding TextFSM templates.
	TemplatesDir string `mapstructure:"templates_dir" default:"templates"`
	// TemplatePrefix is the object prefix of templates inside the storage bucket.
	TemplatePrefix string `mapstructure:"template_prefix" default:"templates"`
	// IndexFile is the rule index (clitable CSV or YAML).
	IndexFile string `mapstructure:"index_file" default:"templates/index"`
	// MaxMTU is the largest MTU written to an interface.
	MaxMTU int `mapstructure:"max_mtu" default:"32767"`
	// VirtualPattern marks interfaces as virtual by name.
	VirtualPattern string `mapstructure:"virtual_pattern" default:"^([Vv]lan|[Dd]iler|[Vv]irtual).*|(.+\\.\\d+)"`
	// AggregatePattern marks interfaces as link aggregates by name.
	AggregatePattern string `mapstructure:"aggregate_pattern" default:"^([Pp]ort).*"`
	// VMPlatform is the platform assigned to synced virtual machines.
	VMPlatform string `mapstructure:"vm_platform" default:"Linux"`
	// VMRole is the role assigned to synced virtual machines.
	VMRole string `mapstructure:"vm_role" default:"Server"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. COLLECTOR_MAX_MTU -> collector.max_mtu)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key in Viper with
// the value of its 'default' tag, so AutomaticEnv can resolve nested keys.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
