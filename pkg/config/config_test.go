package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
)

func validConfig() config.Config {
	return config.Config{
		DB:   config.DBConfig{Driver: config.DriverSQLite, SQLitePath: "inventario.db", MaxConns: 1},
		HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 8080},
	}
}

func TestLoad_ValoresDesdeEntorno(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inv?sslmode=disable")
	t.Setenv("HTTP_HOST", "localhost")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPORT_TITLE", "Inventario Bodega")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/inv?sslmode=disable", cfg.DB.ConnectionString())
	assert.Equal(t, "localhost:9090", cfg.HTTP.Addr())
	assert.Equal(t, "Inventario Bodega", cfg.Report.Title)
}

func TestLoad_RechazaHostNoLocal(t *testing.T) {
	t.Setenv("HTTP_HOST", "0.0.0.0")
	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_HOST")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"válida", func(c *config.Config) {}, ""},
		{"ipv6 loopback", func(c *config.Config) { c.HTTP.Host = "::1" }, ""},
		{"driver desconocido", func(c *config.Config) { c.DB.Driver = "mysql" }, "DB_DRIVER"},
		{"sqlite sin ruta", func(c *config.Config) { c.DB.SQLitePath = "" }, "DB_SQLITE_PATH"},
		{"sin conexiones", func(c *config.Config) { c.DB.MaxConns = 0 }, "DB_MAX_CONNS"},
		{"host de red", func(c *config.Config) { c.HTTP.Host = "192.168.1.10" }, "HTTP_HOST"},
		{"puerto fuera de rango", func(c *config.Config) { c.HTTP.Port = 70000 }, "HTTP_PORT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "inv", Password: "p@ss:word", DBName: "inventario", SSLMode: "disable"}
	assert.Equal(t, "postgres://inv:p%40ss%3Aword@db:5432/inventario?sslmode=disable", c.ConnectionString())
}
