package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[mainConfig]
port = 9000

[redisConfig]
host = "redis.local"

[passportConfig]
smsCodeExpires = 600
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(filepath.Join(dir, "missing.toml"), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MainConfig.Port != 9000 {
		t.Fatalf("expected port 9000 got %d", cfg.MainConfig.Port)
	}
	if cfg.RedisConfig.Host != "redis.local" || cfg.RedisConfig.Port != 6379 {
		t.Fatalf("unexpected redis config %+v", cfg.RedisConfig)
	}
	if cfg.SmsCodeExpires != 600 {
		t.Fatalf("expected sms expiry 600 got %d", cfg.SmsCodeExpires)
	}
	if cfg.ImageCodeExpires != 300 {
		t.Fatalf("expected default image expiry 300 got %d", cfg.ImageCodeExpires)
	}
	if cfg.CaptchaConfig.Length != 4 {
		t.Fatalf("expected default captcha length 4 got %d", cfg.CaptchaConfig.Length)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error when no config file exists")
	}
}

func TestRepoConfigParses(t *testing.T) {
	cfg, err := Load("../../configs/config.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MysqlConfig.DatabaseName == "" {
		t.Fatalf("expected database name in shipped config")
	}
	if cfg.SessionConfig.Secret == "" {
		t.Fatalf("expected session secret in shipped config")
	}
}
