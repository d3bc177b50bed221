package config

import (
	"strings"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}, Database: DatabaseConfig{Driver: DriverMemory}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_Drivers(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		wantErr string
	}{
		{"memory without addrs", DatabaseConfig{Driver: DriverMemory}, ""},
		{"redis with addrs", DatabaseConfig{Driver: DriverRedis, Addrs: []string{"localhost:6379"}}, ""},
		{"valkey without addrs", DatabaseConfig{Driver: DriverValkey}, "database.addrs is required"},
		{"unknown driver", DatabaseConfig{Driver: "mysql"}, "database.driver must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}, Database: tt.db}
			cfg.ApplyDefaults()
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080, RateLimit: -1}, Database: DatabaseConfig{Driver: DriverMemory}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative rate limit")
	}
}

func TestValidate_BcryptCost(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Database: DatabaseConfig{Driver: DriverMemory}}
	cfg.ApplyDefaults()
	cfg.Users.BcryptCost = 40
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bcrypt cost above 31")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected timeouts: %+v", cfg.HTTP)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Errorf("expected MaxBodyBytes=1MiB, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.HTTP.RateBurst != 0 {
		t.Errorf("burst must stay 0 when rate limiting is off, got %d", cfg.HTTP.RateBurst)
	}
	if cfg.Database.Driver != DriverValkey {
		t.Errorf("expected driver %q, got %q", DriverValkey, cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "hbnb:" {
		t.Errorf("expected KeyPrefix='hbnb:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Users.BcryptCost != 10 {
		t.Errorf("expected BcryptCost=10, got %d", cfg.Users.BcryptCost)
	}
}

func TestApplyDefaults_RateBurstFollowsLimit(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{RateLimit: 0.5}}
	cfg.ApplyDefaults()
	if cfg.HTTP.RateBurst != 1 {
		t.Errorf("expected burst 1 for sub-1 rate, got %d", cfg.HTTP.RateBurst)
	}

	cfg = Config{HTTP: HTTPConfig{RateLimit: 25}}
	cfg.ApplyDefaults()
	if cfg.HTTP.RateBurst != 25 {
		t.Errorf("expected burst 25, got %d", cfg.HTTP.RateBurst)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5, RateLimit: 5, RateBurst: 50},
		Database: DatabaseConfig{Driver: DriverRedis, ReadinessTimeout: 15},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 || cfg.HTTP.WriteTimeoutSec != 60 || cfg.HTTP.ShutdownSec != 5 {
		t.Errorf("timeouts overridden: %+v", cfg.HTTP)
	}
	if cfg.HTTP.RateBurst != 50 {
		t.Errorf("expected RateBurst=50, got %d", cfg.HTTP.RateBurst)
	}
	if cfg.Database.Driver != DriverRedis {
		t.Errorf("driver overridden: %q", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("HBNB_TEST_PORT", "9090")
	t.Setenv("HBNB_TEST_KEY", "")
	data := []byte(`
http:
  port: ${HBNB_TEST_PORT}
database:
  driver: ${HBNB_TEST_DRIVER:-memory}
auth:
  api_keys: ["${HBNB_TEST_KEY:-secret}"]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != DriverMemory {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "secret" {
		t.Errorf("api_keys = %v", cfg.Auth.APIKeys)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
