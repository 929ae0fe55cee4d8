package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "node name is required", func() {
			StrPanic("", "node name is required")
		})
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		require.Equal(t, "node-1", StrPanic("node-1", "node name is required"))
	})
}

func TestNilPanic(t *testing.T) {
	t.Run("nil_interface_panics", func(t *testing.T) {
		var v interface{}
		assert.PanicsWithValue(t, "dialer is required", func() {
			NilPanic(v, "dialer is required")
		})
	})
	t.Run("nil_map_panics", func(t *testing.T) {
		var m map[string]int
		assert.PanicsWithValue(t, "map is required", func() {
			NilPanic(m, "map is required")
		})
	})
	t.Run("nil_func_panics", func(t *testing.T) {
		var f func()
		assert.PanicsWithValue(t, "func is required", func() {
			NilPanic(f, "func is required")
		})
	})
	t.Run("nil_pointer_panics", func(t *testing.T) {
		var p *int
		assert.PanicsWithValue(t, "pointer is required", func() {
			NilPanic(p, "pointer is required")
		})
	})
	t.Run("non_nil_returns_value", func(t *testing.T) {
		got := NilPanic([]byte("ok"), "slice is required")
		require.Equal(t, []byte("ok"), got)
	})
	t.Run("zero_int_is_not_nil", func(t *testing.T) {
		require.Equal(t, 0, NilPanic(0, "int is required"))
	})
}

func TestPtr(t *testing.T) {
	v := 42
	p := Ptr(v)
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)
	v = 1
	assert.Equal(t, 42, *p)
}
