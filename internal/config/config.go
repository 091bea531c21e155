package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Upload  UploadConfig  `mapstructure:"upload"`
	OTP     OTPConfig     `mapstructure:"otp"`
	Mail    MailConfig    `mapstructure:"mail"`
	Log     LogConfig     `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

type StorageConfig struct {
	Type          string        `mapstructure:"type"`
	Path          string        `mapstructure:"path"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
	Buckets       BucketsConfig `mapstructure:"buckets"`
	S3            S3Config      `mapstructure:"s3"`
}

type BucketsConfig struct {
	Avatars string `mapstructure:"avatars"`
	SVGs    string `mapstructure:"svgs"`
}

type S3Config struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type UploadConfig struct {
	MaxSVGBytes    int64 `mapstructure:"max_svg_bytes"`
	MaxAvatarBytes int64 `mapstructure:"max_avatar_bytes"`
	Concurrency    int   `mapstructure:"concurrency"`
}

type OTPConfig struct {
	TTL         time.Duration `mapstructure:"ttl"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type MailConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	TLS      bool   `mapstructure:"tls"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]interface{}{
	"http.addr":                    "0.0.0.0:8080",
	"http.allowed_origins":         []string{"http://localhost:5173"},
	"http.read_timeout":            "15s",
	"http.write_timeout":           "60s",
	"db.source":                    "",
	"jwt.secret":                   "",
	"jwt.access_ttl":               "1h",
	"jwt.refresh_ttl":              "720h",
	"storage.type":                 "local",
	"storage.path":                 "./data",
	"storage.public_base_url":      "http://localhost:8080/files",
	"storage.buckets.avatars":      "avatars",
	"storage.buckets.svgs":         "svg-files",
	"storage.s3.region":            "",
	"storage.s3.endpoint":          "",
	"storage.s3.access_key_id":     "",
	"storage.s3.secret_access_key": "",
	"storage.s3.use_path_style":    false,
	"redis.addr":                   "",
	"redis.password":               "",
	"redis.db":                     0,
	"cache.ttl":                    "5m",
	"upload.max_svg_bytes":         5 << 20,
	"upload.max_avatar_bytes":      5 << 20,
	"upload.concurrency":           4,
	"otp.ttl":                      "10m",
	"otp.max_attempts":             5,
	"mail.driver":                  "log",
	"mail.host":                    "",
	"mail.port":                    587,
	"mail.username":                "",
	"mail.password":                "",
	"mail.from":                    "SVG Vault <no-reply@localhost>",
	"mail.tls":                     true,
	"log.level":                    "info",
	"log.format":                   "text",
}

// Load reads configs/settings.yml (optional), then environment variables.
// A .env file in the working directory is loaded into the environment first.
// Every key has a default, so HTTP_ADDR style variables always override.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath("./configs")
	v.AddConfigPath("/configs")
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.DB.Source == "" {
		errs = append(errs, errors.New("db.source is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		errs = append(errs, errors.New("jwt.access_ttl and jwt.refresh_ttl must be positive"))
	}

	switch c.Storage.Type {
	case "local":
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for local storage"))
		}
	case "s3":
		if c.Storage.S3.Region == "" {
			errs = append(errs, errors.New("storage.s3.region is required for s3 storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.type %q (want local or s3)", c.Storage.Type))
	}
	if c.Storage.Buckets.Avatars == "" || c.Storage.Buckets.SVGs == "" {
		errs = append(errs, errors.New("storage.buckets.avatars and storage.buckets.svgs are required"))
	}

	if c.Upload.MaxSVGBytes <= 0 || c.Upload.MaxAvatarBytes <= 0 {
		errs = append(errs, errors.New("upload size limits must be positive"))
	}
	if c.Upload.Concurrency < 1 {
		errs = append(errs, errors.New("upload.concurrency must be at least 1"))
	}
	if c.OTP.TTL <= 0 || c.OTP.MaxAttempts < 1 {
		errs = append(errs, errors.New("otp.ttl must be positive and otp.max_attempts at least 1"))
	}

	switch c.Mail.Driver {
	case "log":
	case "smtp":
		if c.Mail.Host == "" || c.Mail.From == "" {
			errs = append(errs, errors.New("mail.host and mail.from are required for smtp mail"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mail.driver %q (want log or smtp)", c.Mail.Driver))
	}

	return errors.Join(errs...)
}
