// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库

	"news_server/pkg/constants"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName     string `toml:"appName"`     // 应用名称，用于日志标识等
	Host        string `toml:"host"`        // 服务器监听地址，如 "0.0.0.0"
	Port        int    `toml:"port"`        // 服务器监听端口，如 8000
	Mode        string `toml:"mode"`        // 运行模式：debug 或 release
	TLSRedirect bool   `toml:"tlsRedirect"` // 是否将 HTTP 请求重定向到 HTTPS
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// AuthCodeConfig 短信验证码服务配置（阿里云 SMS）
type AuthCodeConfig struct {
	AccessKeyID     string `toml:"accessKeyID"`     // 阿里云 AccessKey ID
	AccessKeySecret string `toml:"accessKeySecret"` // 阿里云 AccessKey Secret
	SignName        string `toml:"signName"`        // 短信签名名称
	TemplateCode    string `toml:"templateCode"`    // 短信模板 Code
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// SessionConfig Cookie Session 配置
type SessionConfig struct {
	Name   string `toml:"name"`   // Cookie 名称
	Secret string `toml:"secret"` // Cookie 签名密钥
	MaxAge int    `toml:"maxAge"` // 有效期（秒）
}

// CaptchaConfig 图片验证码配置
type CaptchaConfig struct {
	Length int `toml:"length"` // 验证码字符数
	Width  int `toml:"width"`  // 图片宽度（像素）
	Height int `toml:"height"` // 图片高度（像素）
}

// PassportConfig 注册流程配置
type PassportConfig struct {
	ImageCodeExpires int `toml:"imageCodeExpires"` // 图片验证码有效期（秒）
	SmsCodeExpires   int `toml:"smsCodeExpires"`   // 短信验证码有效期（秒）
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`     // 主配置
	MysqlConfig    `toml:"mysqlConfig"`    // MySQL 配置
	RedisConfig    `toml:"redisConfig"`    // Redis 配置
	AuthCodeConfig `toml:"authCodeConfig"` // 短信验证码配置
	LogConfig      `toml:"logConfig"`      // 日志配置
	SessionConfig  `toml:"sessionConfig"`  // Session 配置
	CaptchaConfig  `toml:"captchaConfig"`  // 图片验证码配置
	PassportConfig `toml:"passportConfig"` // 注册流程配置
}

// config 全局配置单例，延迟加载
var config *Config

// defaultPaths 候选配置文件路径（优先加载本地配置）
var defaultPaths = []string{
	"configs/config_local.toml",       // 本地开发配置（优先）
	"configs/config.toml",             // 默认配置
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",       // 从子目录运行时的路径
}

// Load 从候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func Load(paths ...string) (*Config, error) {
	for _, path := range paths {
		cfg := new(Config)
		if _, err := toml.DecodeFile(path, cfg); err == nil {
			cfg.applyDefaults()
			return cfg, nil
		}
	}
	return nil, fmt.Errorf("could not find configuration file in any of the search paths")
}

// applyDefaults 为未配置的字段填充默认值
func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "news_server"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8000
	}
	if c.Mode == "" {
		c.Mode = "debug"
	}
	if c.MysqlConfig.Port == 0 {
		c.MysqlConfig.Port = 3306
	}
	if c.RedisConfig.Host == "" {
		c.RedisConfig.Host = "127.0.0.1"
	}
	if c.RedisConfig.Port == 0 {
		c.RedisConfig.Port = 6379
	}
	if c.LogPath == "" {
		c.LogPath = "./logs"
	}
	if c.SessionConfig.Name == "" {
		c.SessionConfig.Name = "session"
	}
	if c.SessionConfig.MaxAge == 0 {
		c.SessionConfig.MaxAge = 86400 * 2
	}
	if c.CaptchaConfig.Length == 0 {
		c.CaptchaConfig.Length = 4
	}
	if c.Width == 0 {
		c.Width = 120
	}
	if c.Height == 0 {
		c.Height = 40
	}
	if c.ImageCodeExpires == 0 {
		c.ImageCodeExpires = constants.IMAGE_CODE_REDIS_EXPIRES
	}
	if c.SmsCodeExpires == 0 {
		c.SmsCodeExpires = constants.SMS_CODE_REDIS_EXPIRES
	}
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，找不到文件时使用默认值
func GetConfig() *Config {
	if config == nil {
		cfg, err := Load(defaultPaths...)
		if err != nil {
			cfg = new(Config)
			cfg.applyDefaults()
		}
		config = cfg
	}
	return config
}
