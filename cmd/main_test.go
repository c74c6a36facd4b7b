package main

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	assert.Equal(t, "myconfig.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB, pgAdminDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		err := parseConfig("does-not-exist.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "users", pgDB)
	assert.Equal(t, "postgres", pgAdminDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "info", logLevel)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	resetEnv()

	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_HOST", "db.internal")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_DB", "people")
	os.Setenv("POSTGRES_ADMIN_DB", "template1")
	os.Setenv("APP_LOG_LEVEL", "debug")
	defer resetEnv()

	_, appPort,
		pgHost, pgPort, _, _, pgDB, pgAdminDB,
		_, _,
		logLevel,
		err := parseConfig("does-not-exist.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "db.internal", pgHost)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, "people", pgDB)
	assert.Equal(t, "template1", pgAdminDB)
	assert.Equal(t, "debug", logLevel)
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _, _, _, _, _, _, _, _, _, err := parseConfig("does-not-exist.env")
	assert.Error(t, err)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	printBuildInfo()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	assert.Contains(t, buf.String(), "Starting service version")
}
