package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// 没有配置文件时走默认值
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Retention.ShortLogCap != 50 || cfg.Retention.LongLogCap != 100 {
		t.Errorf("retention = %+v", cfg.Retention)
	}
	if cfg.AI.DeepSeek.BaseURL == "" || cfg.AI.DeepSeek.Model == "" {
		t.Errorf("deepseek 默认值缺失: %+v", cfg.AI.DeepSeek)
	}
}

func TestWriteFileLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.App.Name = "roundtrip"
	cfg.App.LogLevel = "debug"
	cfg.Server.ListenAddr = "127.0.0.1:18080"
	cfg.Storage.DBPath = filepath.Join(dir, "data", "life.db")
	cfg.Retention.ShortLogCap = 7
	cfg.Retention.LongLogCap = 9
	cfg.AI.DeepSeek.APIKey = "sk-test"
	cfg.AI.DeepSeek.Model = "deepseek-chat"
	cfg.Content.Dir = dir
	cfg.Content.Watch = false

	if err := WriteFile(path, cfg); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.App.Name != "roundtrip" || loaded.App.LogLevel != "debug" {
		t.Errorf("app = %+v", loaded.App)
	}
	if loaded.Server.ListenAddr != "127.0.0.1:18080" {
		t.Errorf("listen_addr = %q", loaded.Server.ListenAddr)
	}
	if loaded.Storage.DBPath != cfg.Storage.DBPath {
		t.Errorf("db_path = %q, want %q", loaded.Storage.DBPath, cfg.Storage.DBPath)
	}
	if loaded.Retention.ShortLogCap != 7 || loaded.Retention.LongLogCap != 9 {
		t.Errorf("retention = %+v", loaded.Retention)
	}
	if loaded.AI.DeepSeek.APIKey != "sk-test" {
		t.Errorf("api_key = %q", loaded.AI.DeepSeek.APIKey)
	}
	if loaded.Content.Dir != dir || loaded.Content.Watch {
		t.Errorf("content = %+v", loaded.Content)
	}
}

func TestExpandEnvPlaceholder(t *testing.T) {
	t.Setenv("LIFE_TEST_KEY", "sk-from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := Default()
	cfg.Storage.DBPath = filepath.Join(dir, "life.db")
	cfg.AI.DeepSeek.APIKey = "${LIFE_TEST_KEY}"
	if err := WriteFile(path, cfg); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.AI.DeepSeek.APIKey != "sk-from-env" {
		t.Errorf("api_key = %q, 期望从环境变量展开", loaded.AI.DeepSeek.APIKey)
	}
}

func TestWriteFileCreatesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config", "config.yaml")

	if err := WriteFile(path, Default()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("配置文件未生成: %v", err)
	}
}
