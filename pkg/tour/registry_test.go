package tour

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_PreservesOrder(t *testing.T) {
	reg := NewRegistry().
		Register("c", makePrintingExample("c")).
		Register("a", makePrintingExample("a")).
		Register("b", makePrintingExample("b"))

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"c", "a", "b"}, reg.Names())
}

func TestRegistry_AllowsDuplicateNames(t *testing.T) {
	reg := NewRegistry().
		Register("same", makePrintingExample("one")).
		Register("same", makePrintingExample("two"))

	assert.Equal(t, []string{"same", "same"}, reg.Names())
}

func TestRegistry_RegisterNilActionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "tour: example action cannot be nil", func() {
		NewRegistry().Register("nil", nil)
	})
}

func TestRegistry_ExamplesReturnsCopy(t *testing.T) {
	reg := NewRegistry().Register("a", makePrintingExample("a"))

	examples := reg.Examples()
	examples[0].Name = "mutated"

	assert.Equal(t, []string{"a"}, reg.Names())
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var reg *Registry

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Names())
	assert.Empty(t, reg.Examples())
}

func TestRegistry_Append(t *testing.T) {
	first := NewRegistry().Register("a", makePrintingExample("a"))
	second := NewRegistry().
		Register("b", makePrintingExample("b")).
		Register("c", makePrintingExample("c"))

	first.Append(second).Append(nil)

	assert.Equal(t, []string{"a", "b", "c"}, first.Names())
	assert.Equal(t, []string{"b", "c"}, second.Names())
}

func TestRegistry_Select(t *testing.T) {
	reg := NewRegistry().
		Register("a", makePrintingExample("a")).
		Register("b", makePrintingExample("b")).
		Register("c", makePrintingExample("c")).
		Register("a", makePrintingExample("a2"))

	t.Run("keeps registration order", func(t *testing.T) {
		selected, err := reg.Select("c", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "a"}, selected.Names())
	})

	t.Run("empty selection", func(t *testing.T) {
		selected, err := reg.Select()
		require.NoError(t, err)
		assert.Equal(t, 0, selected.Len())
	})

	t.Run("reports every unknown name", func(t *testing.T) {
		_, err := reg.Select("a", "missing", "gone", "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownExample))
		assert.Contains(t, err.Error(), "missing")
		assert.Contains(t, err.Error(), "gone")
	})
}
