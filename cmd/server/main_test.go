package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()

	assert.Equal(t, "podcast-api", root.Name)
	assert.NotNil(t, root.Action, "running without a subcommand serves")

	names := map[string]bool{}
	for _, cmd := range root.Commands {
		names[cmd.Name] = true
	}
	assert.True(t, names["serve"])
	require.True(t, names["migrate"])

	migrate := migrateCommand()
	var subs []string
	for _, cmd := range migrate.Commands {
		subs = append(subs, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "version"}, subs)
}

func TestMigrateCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("PODCAST_DATABASE_DRIVER", "sqlite3")
	t.Setenv("PODCAST_DATABASE_URL", "file:"+dbPath)
	t.Setenv("PODCAST_AUTH_PRIVATE_KEY", testPrivateKey)
	t.Setenv("PODCAST_SERVER_LOG_LEVEL", "error")

	ctx := context.Background()
	for _, args := range [][]string{
		{"podcast-api", "migrate", "up"},
		{"podcast-api", "migrate", "version"},
		{"podcast-api", "migrate", "status"},
		{"podcast-api", "migrate", "down"},
		{"podcast-api", "migrate", "up"},
	} {
		require.NoError(t, newRootCommand().Run(ctx, args), args)
	}

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestMigrateCommandReportsConfigErrors(t *testing.T) {
	t.Setenv("PODCAST_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PODCAST_AUTH_PRIVATE_KEY", "")

	err := newRootCommand().Run(context.Background(), []string{"podcast-api", "migrate", "up"})
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestMigrateCommandReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	contents := "server:\n  log_level: error\n" +
		"database:\n  driver: sqlite3\n  url: file:" + filepath.Join(dir, "file.db") + "\n" +
		"auth:\n  private_key: " + testPrivateKey + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	err := newRootCommand().Run(context.Background(),
		[]string{"podcast-api", "--config", configPath, "migrate", "up"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "file.db"))
	assert.NoError(t, err)
}
