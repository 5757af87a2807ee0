package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Environment   string `mapstructure:"environment"`
	Port          string `mapstructure:"port"`
	DBType        string `mapstructure:"db_type"`
	PostgresURL   string `mapstructure:"postgres_url"`
	MongoURL      string `mapstructure:"mongo_url"`
	MongoDatabase string `mapstructure:"mongo_database"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	MigrationsDir string `mapstructure:"migrations_dir"`
	AssetsDir     string `mapstructure:"assets_dir"`
	CompanyFile   string `mapstructure:"company_file"`

	Log      LogConfig      `mapstructure:"log"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	XLSX     XLSXConfig     `mapstructure:"xlsx"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Redis    RedisConfig    `mapstructure:"redis"`
	R2       R2Config       `mapstructure:"r2"`
	Auth     AuthConfig     `mapstructure:"auth"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type SheetsConfig struct {
	SpreadsheetURL  string `mapstructure:"spreadsheet_url"`
	Worksheet       string `mapstructure:"worksheet"`
	CredentialsFile string `mapstructure:"credentials_file"`
	CredentialsJSON string `mapstructure:"credentials_json"`
}

func (c SheetsConfig) Configured() bool {
	return c.SpreadsheetURL != "" && (c.CredentialsFile != "" || c.CredentialsJSON != "")
}

type XLSXConfig struct {
	Path       string `mapstructure:"path"`
	Sheet      string `mapstructure:"sheet"`
	MirrorPath string `mapstructure:"mirror_path"` // empty disables the local mirror
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"` // memory, redis or none
	TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type R2Config struct {
	AccountID       string `mapstructure:"account_id"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PublicURL       string `mapstructure:"public_url"`
}

type AuthConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Username     string        `mapstructure:"username"`
	PasswordHash string        `mapstructure:"password_hash"` // bcrypt
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type PDFConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	ChromePath string        `mapstructure:"chrome_path"`
}

// DefaultsConfig seeds new drafts.
type DefaultsConfig struct {
	Transporter string `mapstructure:"transporter"`
	FuelType    string `mapstructure:"fuel_type"`
}

// LoadConfig reads .env, an optional YAML file, then environment variables.
// Nested keys map to env names with "_" (cache.ttl -> CACHE_TTL).
func LoadConfig(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", file)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}
	cfg.DBType = strings.ToLower(strings.TrimSpace(cfg.DBType))
	if cfg.Auth.Enabled {
		if cfg.Auth.JWTSecret == "" {
			return nil, errors.New("AUTH_JWT_SECRET is required when auth is enabled")
		}
		// postgres and mongo keep operators in the database
		if cfg.Auth.PasswordHash == "" && cfg.DBType != "postgres" && cfg.DBType != "mongo" {
			return nil, errors.New("AUTH_PASSWORD_HASH is required when auth is enabled")
		}
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db_type", "sheets")
	v.SetDefault("postgres_url", "")
	v.SetDefault("mongo_url", "")
	v.SetDefault("mongo_database", "fueldelivery")
	v.SetDefault("sqlite_path", "fueldelivery.db")
	v.SetDefault("migrations_dir", "db/migrations")
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("company_file", "company_config.json")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("sheets.spreadsheet_url", "")
	v.SetDefault("sheets.worksheet", "Sheet1")
	v.SetDefault("sheets.credentials_file", "")
	v.SetDefault("sheets.credentials_json", "")

	v.SetDefault("xlsx.path", "dbase.xlsx")
	v.SetDefault("xlsx.sheet", "Sheet1")
	v.SetDefault("xlsx.mirror_path", "dbase.xlsx")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", "60s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("r2.account_id", "")
	v.SetDefault("r2.bucket", "")
	v.SetDefault("r2.access_key_id", "")
	v.SetDefault("r2.secret_access_key", "")
	v.SetDefault("r2.public_url", "")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "12h")

	v.SetDefault("pdf.timeout", "30s")
	v.SetDefault("pdf.chrome_path", "")

	v.SetDefault("defaults.transporter", "PT. SHA Solo")
	v.SetDefault("defaults.fuel_type", "Biosolar Industri B40")
}
