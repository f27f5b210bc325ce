package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/binheap"
	"github.com/katalvlaran/dsviz/hashtable"
)

func TestInitConfig_Env(t *testing.T) {
	t.Setenv("DSVIZ_HEAP_KIND", "max")
	t.Setenv("DSVIZ_HASHTABLE_CAPACITY", "7")
	t.Setenv("DSVIZ_ANIMATION_INTERVAL", "250ms")
	t.Setenv("DSVIZ_GRAPH_SEED", "42")

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := consoleConfig(v)
	require.NoError(t, err)

	assert.Equal(t, binheap.Max, cfg.HeapKind)
	assert.Equal(t, 7, cfg.TableCapacity)
	assert.Equal(t, hashtable.Chaining, cfg.TableStrategy)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, int64(42), cfg.GraphSeed)
}

func TestConsoleConfig_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("heap.kind", "median")
	_, err := consoleConfig(v)
	assert.ErrorIs(t, err, binheap.ErrUnknownKind)

	v = viper.New()
	v.Set("heap.kind", "min")
	v.Set("hashtable.strategy", "cuckoo")
	_, err = consoleConfig(v)
	assert.ErrorIs(t, err, hashtable.ErrUnknownStrategy)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("DEBUG"))
	assert.Error(t, InitLogger("LOUD"))
}
