package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coastalops/launchtours/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAML(t *testing.T) {
	yaml := `
server:
  host: 127.0.0.1
  port: 18080

logger:
  level: info
  format: json
  env: dev

postgres:
  host: 127.0.0.1
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: disable
  max_conns: 5
  min_conns: 1
  max_conn_lifetime: 60
  max_conn_idle_time: 30
  health_check_period: 15

listview:
  cache_ttl_seconds: 45
`
	cfg, err := config.Load(writeTempConfig(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 18080 {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Postgres.DBName != "testdb" || cfg.Postgres.MaxConns != 5 {
		t.Fatalf("unexpected postgres config: %+v", cfg.Postgres)
	}
	if cfg.ListView.CacheTTLSeconds != 45 {
		t.Fatalf("unexpected listview config: %+v", cfg.ListView)
	}
}

func TestConfigLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
