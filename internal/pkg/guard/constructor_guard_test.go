package guard_test

import (
	"errors"
	"testing"

	"shippinglabel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("replayCommand must be created via newReplayCommand")

	type replayCommand struct {
		path  string
		guard guard.ConstructorGuard
	}

	newReplayCommand := func(path string) (replayCommand, error) {
		if path == "" {
			return replayCommand{}, errors.New("path is required")
		}
		return replayCommand{path: path, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newReplayCommand("actions.jsonl")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, "actions.jsonl", cmd.path)
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		var cmd replayCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("constructor_rejects_missing_path", func(t *testing.T) {
		_, err := newReplayCommand("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "path is required")
	})
}
