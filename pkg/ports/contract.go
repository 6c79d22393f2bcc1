package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScriptStoreContract runs a suite of tests to verify that a ScriptStore implementation
// adheres to the defined interface contract.
func RunScriptStoreContract(t *testing.T, store ScriptStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")
	script := "w 1 1 t;\ndc 4 4 2 t;\n"

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, script)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, script, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, "i;\n"))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "i;\n", loaded)
	})

	t.Run("Empty Script", func(t *testing.T) {
		empty := name + "-empty"
		require.NoError(t, store.Save(ctx, empty, ""))
		defer func() { _ = store.Delete(ctx, empty) }()

		loaded, err := store.Load(ctx, empty)
		require.NoError(t, err)
		assert.Equal(t, "", loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrScriptNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		for _, bad := range []string{"", "..", "a/b", "with space"} {
			err := store.Save(ctx, bad, script)
			assert.ErrorIs(t, err, domain.ErrInvalidScriptName, bad)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, script))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrScriptNotFound, "Load after Delete should return ErrScriptNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing script should succeed")
	})

	t.Run("Reserved-looking Names", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, script))
		defer func() { _ = store.Delete(ctx, name) }()

		for _, special := range []string{"index", "scripts"} {
			require.NoError(t, store.Save(ctx, special, "i;\n"), special)
			loaded, err := store.Load(ctx, special)
			require.NoError(t, err, special)
			assert.Equal(t, "i;\n", loaded, special)
		}

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
		assert.Contains(t, names, "index")
		assert.Contains(t, names, "scripts")

		for _, special := range []string{"index", "scripts"} {
			require.NoError(t, store.Delete(ctx, special), special)
		}
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, id1, script))
		require.NoError(t, store.Save(ctx, id2, script))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
	})
}
