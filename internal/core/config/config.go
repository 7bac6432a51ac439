package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	BasePath        string // 公共 API 前缀，默认挂在根路径
}

type AdminHTTP struct {
	Host string
	Port int
	// 首次启动时创建的管理员，两项都为空则跳过
	BootstrapEmail    string
	BootstrapPassword string
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // 为空只写 stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	Audience          []string
	AccessTokenTTLMin int
}

func (j JWT) TTL() time.Duration { return time.Duration(j.AccessTokenTTLMin) * time.Minute }

type Redis struct {
	Addr        string `mapstructure:"addr"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	CacheTTLSec int    `mapstructure:"cacheTTLSec"`
}

// Enabled 未配置地址时不启用缓存
func (r Redis) Enabled() bool { return r.Addr != "" }

type DB struct {
	Driver             string // postgres | mysql | sqlite
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
	SlowThresholdMs    int
}

type Limits struct {
	RPS               float64
	Burst             int
	LoginRPS          float64
	LoginBurst        int
	MaxConcurrent     int64
	MaxBodyBytes      int64
	RequestTimeoutSec int
}

type Config struct {
	App    App
	Log    Log
	JWT    JWT
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Limits Limits
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "inventory")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 15)
	v.SetDefault("app.http.writeTimeoutSec", 15)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.http.basePath", "")
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8081)
	v.SetDefault("app.admin.bootstrapEmail", "")
	v.SetDefault("app.admin.bootstrapPassword", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.maxSizeMB", 100)
	v.SetDefault("log.maxBackups", 7)
	v.SetDefault("log.maxAgeDays", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "inventory")
	v.SetDefault("jwt.audience", []string{"inventory"})
	v.SetDefault("jwt.accessTokenTTLMin", 60)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 10)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.logLevel", "warn")
	v.SetDefault("db.slowThresholdMs", 200)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cacheTTLSec", 300)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.loginRps", 1)
	v.SetDefault("limits.loginBurst", 5)
	v.SetDefault("limits.maxConcurrent", 300)
	v.SetDefault("limits.maxBodyBytes", 1<<20)
	v.SetDefault("limits.requestTimeoutSec", 10)
}

// Read 读取 yaml + APP_ 前缀环境变量；文件不存在时只用默认值和环境变量
func Read(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	c, err := Read(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	return c
}
