package migration

import (
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"storefront/config"
	"storefront/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresDatabaseURL(t *testing.T) {
	_, err := New(nil, slog.Default())
	assert.ErrorIs(t, err, ErrNoDatabaseURL)

	_, err = New(&config.MigrationConfig{Path: "file://migrations"}, slog.Default())
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)

	versions := make([]string, 0, len(ups))
	for v := range ups {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	assert.True(t, strings.HasPrefix(versions[0], "000001_"))
}
