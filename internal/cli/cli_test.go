package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/store"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// setupConfig writes a config pointing the database and log into a temp dir
func setupConfig(t *testing.T, writeMode string) string {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "tasks.db")
	cfg.Log.Path = filepath.Join(dir, "logs", "tasklist.log")
	cfg.Store.WriteMode = writeMode

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.Save(path))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.ExecuteContext(context.Background())
	if err != nil && !reported(err) {
		stderr.WriteString(err.Error())
	}
	return result{stdout: stdout.String(), stderr: stderr.String(), code: ExitCode(err)}
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func seed(t *testing.T, cfgPath string, titles ...string) {
	t.Helper()
	for _, title := range titles {
		res := run(t, cfgPath, "add", title)
		require.Equal(t, ExitSuccess, res.code, res.stderr)
	}
}

func TestList_Empty(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "list")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	golden(t).Assert(t, "list_empty", []byte(res.stdout))
}

func TestAddThenList(t *testing.T) {
	for _, mode := range []string{config.WriteModeDeferred, config.WriteModeImmediate} {
		t.Run(mode, func(t *testing.T) {
			cfgPath := setupConfig(t, mode)

			seed(t, cfgPath, "Buy milk", "Walk dog", "Call mom")

			res := run(t, cfgPath, "list")
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			golden(t).Assert(t, "list_text", []byte(res.stdout))
		})
	}
}

func TestAdd_JoinsArguments(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "add", "Buy", "milk")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Buy milk")

	res = run(t, cfgPath, "list")
	assert.Equal(t, "1. Buy milk\n", res.stdout)
}

func TestAdd_Quiet(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "add", "Buy milk", "--quiet")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	id := strings.TrimSpace(res.stdout)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)

	res = run(t, cfgPath, "list", "--quiet")
	assert.Equal(t, id+"\n", res.stdout)
}

func TestAdd_Validation(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	tests := []struct {
		name  string
		title string
	}{
		{"whitespace", "   "},
		{"empty", ""},
		{"too long", strings.Repeat("x", tasklist.MaxTitleLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, cfgPath, "add", tt.title)
			assert.Equal(t, ExitValidation, res.code)
			assert.Contains(t, res.stderr, "Error:")
		})
	}

	res := run(t, cfgPath, "list")
	assert.Equal(t, "No tasks.\n", res.stdout, "rejected titles must not be stored")
}

func TestAdd_MissingTitleIsUsageError(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "add")

	assert.Equal(t, ExitUsage, res.code)
}

func TestList_JSON(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)
	seed(t, cfgPath, "Buy milk", "Walk dog")

	res := run(t, cfgPath, "list", "--json")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var out struct {
		Success bool       `json:"success"`
		Data    []taskJSON `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))

	assert.True(t, out.Success)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "Buy milk", out.Data[0].Title)
	assert.Equal(t, 1, out.Data[0].Position)
	assert.Equal(t, "Walk dog", out.Data[1].Title)
	assert.Equal(t, 2, out.Data[1].Position)
	assert.NotEqual(t, out.Data[0].ID, out.Data[1].ID)
}

func TestList_IDs(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)
	seed(t, cfgPath, "Buy milk")

	id := strings.TrimSpace(run(t, cfgPath, "list", "--quiet").stdout)
	res := run(t, cfgPath, "list", "--ids")

	assert.Equal(t, fmt.Sprintf("1. %s  Buy milk\n", id), res.stdout)
}

func TestRename(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)
	seed(t, cfgPath, "Buy milk", "Walk dog")

	t.Run("by row", func(t *testing.T) {
		res := run(t, cfgPath, "rename", "2", "Walk", "the", "dog")
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Walk the dog")
	})

	t.Run("by id prefix", func(t *testing.T) {
		ids := strings.Fields(run(t, cfgPath, "list", "--quiet").stdout)
		require.Len(t, ids, 2)

		res := run(t, cfgPath, "rename", ids[0][:8], "Buy oat milk", "--json")
		require.Equal(t, ExitSuccess, res.code, res.stderr)

		var out struct {
			Data taskJSON `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		assert.Equal(t, ids[0], out.Data.ID, "rename keeps identity")
		assert.Equal(t, "Buy oat milk", out.Data.Title)
	})

	res := run(t, cfgPath, "list")
	assert.Equal(t, "1. Buy oat milk\n2. Walk the dog\n", res.stdout)
}

func TestRename_Errors(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)
	seed(t, cfgPath, "Buy milk")

	t.Run("row out of range", func(t *testing.T) {
		res := run(t, cfgPath, "rename", "5", "Anything")
		assert.Equal(t, ExitNotFound, res.code)
		assert.Contains(t, res.stderr, "tasklist list")
	})

	t.Run("unknown id", func(t *testing.T) {
		res := run(t, cfgPath, "rename", "no-such-id", "Anything")
		assert.Equal(t, ExitNotFound, res.code)
	})

	t.Run("blank title", func(t *testing.T) {
		res := run(t, cfgPath, "rename", "1", "  ")
		assert.Equal(t, ExitValidation, res.code)
	})

	t.Run("json error envelope", func(t *testing.T) {
		res := run(t, cfgPath, "rename", "9", "Anything", "--json")
		assert.Equal(t, ExitNotFound, res.code)

		var out struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		assert.False(t, out.Success)
		assert.Equal(t, "TASK_NOT_FOUND", out.Error.Code)
	})

	res := run(t, cfgPath, "list")
	assert.Equal(t, "1. Buy milk\n", res.stdout)
}

func TestRemove(t *testing.T) {
	for _, mode := range []string{config.WriteModeDeferred, config.WriteModeImmediate} {
		t.Run(mode, func(t *testing.T) {
			cfgPath := setupConfig(t, mode)
			seed(t, cfgPath, "Buy milk", "Walk dog", "Call mom")

			res := run(t, cfgPath, "rm", "2")
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			assert.Contains(t, res.stdout, "Walk dog")

			res = run(t, cfgPath, "list")
			golden(t).Assert(t, "list_after_rm", []byte(res.stdout))
		})
	}
}

func TestRemove_NotFound(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "rm", "1")

	assert.Equal(t, ExitNotFound, res.code)
}

func TestRootRejectsArguments(t *testing.T) {
	cfgPath := setupConfig(t, config.WriteModeDeferred)

	res := run(t, cfgPath, "bogus")

	assert.Equal(t, ExitUsage, res.code)
}

func TestInvalidWriteMode(t *testing.T) {
	cfgPath := setupConfig(t, "sometimes")

	res := run(t, cfgPath, "list")

	assert.Equal(t, ExitError, res.code)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"empty title", tasklist.ErrEmptyTitle, ExitValidation},
		{"too long", fmt.Errorf("add: %w", tasklist.ErrTitleTooLong), ExitValidation},
		{"bad ref", fmt.Errorf("%w: row 3", errTaskRef), ExitNotFound},
		{"store not found", store.ErrTaskNotFound, ExitNotFound},
		{"unavailable", store.ErrStoreUnavailable, ExitError},
		{"explicit", withExitCode(ExitUsage, errors.New("bad args")), ExitUsage},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
