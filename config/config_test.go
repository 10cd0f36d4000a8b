package config

import (
	"testing"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, &Config{ListenAddr: ":8080", LogLevel: "info", LogFormat: "json"}, cfg)
	assert.ErrorIs(t, cfg.Validate(), gerrors.ErrConfig)
}

func TestLoad_Sources(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "gdrive.yaml", []byte(
		"folder_id: from-file\nservice_account_json: /etc/sa.json\nlog_level: debug\nlisten_addr: \":9000\"\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, ".env", []byte(
		"GDRIVE_FOLDER_ID=from-dotenv\nGDRIVE_LOG_FORMAT=console\nOTHER=ignored\n"), 0o644))
	t.Setenv("GDRIVE_LISTEN_ADDR", ":7000")

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		FolderID:           "from-dotenv",
		ServiceAccountJSON: "/etc/sa.json",
		ListenAddr:         ":7000",
		LogLevel:           "debug",
		LogFormat:          "console",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesDotEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("GDRIVE_FOLDER_ID=from-dotenv\n"), 0o644))
	t.Setenv("GDRIVE_FOLDER_ID", "from-env")

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.FolderID)
}

func TestLoad_ExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/custom.yaml", []byte("folder_id: custom\n"), 0o644))

	cfg, err := Load(fs, "/conf/custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.FolderID)

	_, err = Load(fs, "/conf/missing.yaml")
	assert.ErrorIs(t, err, gerrors.ErrConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{FolderID: "f", ServiceAccountJSON: "sa.json"}, false},
		{"no folder", Config{ServiceAccountJSON: "sa.json"}, true},
		{"no credentials", Config{FolderID: "f"}, true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr {
				assert.ErrorIs(t, err, gerrors.ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadCredentials(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "sa.json", []byte(`{"type":"service_account"}`), 0o600))
	require.NoError(t, afero.WriteFile(fs, "empty.json", []byte("  \n"), 0o600))

	data, err := ReadCredentials(fs, "sa.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(data))

	_, err = ReadCredentials(fs, "empty.json")
	assert.ErrorIs(t, err, gerrors.ErrConfig)

	_, err = ReadCredentials(fs, "missing.json")
	assert.ErrorIs(t, err, gerrors.ErrConfig)
}
