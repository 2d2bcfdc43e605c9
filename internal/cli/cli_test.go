package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/memory"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, slot *memory.Slot, stdin string, args ...string) result {
	t.Helper()

	c := NewWithStorage(func(context.Context) (*bootstrap.Storage, error) {
		return &bootstrap.Storage{Driver: "memory", Primary: slot, Backup: memory.NewSlot()}, nil
	})
	var out, errOut bytes.Buffer
	c.SetIO(strings.NewReader(stdin), &out, &errOut)

	code := c.Execute(args)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestSeedThenStats(t *testing.T) {
	slot := memory.NewSlot()

	res := runWith(t, slot, "", "seed")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "seeded 3 projects")

	res = runWith(t, slot, "", "seed")
	assert.Contains(t, res.stdout, "nothing seeded")

	res = runWith(t, slot, "", "stats", "--json")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var stats statsOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &stats))
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 4, stats.NextID)
	assert.Equal(t, []techCountOutput{{Tech: "Various Technologies", Count: 3}}, stats.ByTech)
}

func TestExportImportRoundTrip(t *testing.T) {
	source := memory.NewSlot()
	require.Equal(t, ExitSuccess, runWith(t, source, "", "seed").code)

	exported := runWith(t, source, "", "export")
	require.Equal(t, ExitSuccess, exported.code, exported.stderr)
	assert.True(t, strings.HasPrefix(exported.stdout, "[\n  {"))

	t.Run("from stdin", func(t *testing.T) {
		target := memory.NewSlot()
		res := runWith(t, target, exported.stdout, "import", "-")
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.Contains(t, res.stdout, "imported 3 projects")
		assert.Equal(t, 1, target.Saves())
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "projects.json")
		require.NoError(t, os.WriteFile(path, []byte(exported.stdout), 0o600))

		target := memory.NewSlot()
		res := runWith(t, target, "", "import", path)
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.Contains(t, runWith(t, target, "", "export").stdout, "Project A")
	})

	t.Run("invalid input leaves the slot untouched", func(t *testing.T) {
		res := runWith(t, source, `{"projects": []}`, "import", "-")
		assert.Equal(t, ExitFailure, res.code)
		assert.Contains(t, res.stderr, "portfolioctl:")

		stats := runWith(t, source, "", "stats")
		assert.Contains(t, stats.stdout, "projects:  3")
	})

	t.Run("missing file", func(t *testing.T) {
		res := runWith(t, memory.NewSlot(), "", "import", filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, ExitFailure, res.code)
	})
}

func TestClear(t *testing.T) {
	slot := memory.NewSlot()
	require.Equal(t, ExitSuccess, runWith(t, slot, "", "seed").code)

	res := runWith(t, slot, "", "clear")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "--yes")

	res = runWith(t, slot, "", "clear", "--yes")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "removed 3 projects")

	data, err := slot.Load(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[]}`, string(data))
}

func TestRedisBackedCommands(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	c := NewWithStorage(func(context.Context) (*bootstrap.Storage, error) {
		return bootstrap.NewRedisStorage(client, "portfolio-projects"), nil
	})
	var out, errOut bytes.Buffer
	c.SetIO(strings.NewReader(""), &out, &errOut)
	require.Equal(t, ExitSuccess, c.Execute([]string{"seed"}), errOut.String())

	raw, err := mr.Get("portfolio-projects")
	require.NoError(t, err)
	assert.Contains(t, raw, "Project B")
}

func TestUnknownCommand(t *testing.T) {
	res := runWith(t, memory.NewSlot(), "", "frobnicate")
	assert.Equal(t, ExitFailure, res.code)
}
