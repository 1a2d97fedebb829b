package alias

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjhara/temp-hum-logger/internal/ui/sanitize"
)

type failingKV struct {
	err error
}

func (f *failingKV) Get(string) (string, bool, error) { return "", false, f.err }
func (f *failingKV) Set(string, string) error { return f.err }
func (f *failingKV) Delete(string) error { return f.err }

func newTestStore() (*Store, *MemoryKV) {
	kv := NewMemoryKV()
	return NewStore(kv, nil), kv
}

func TestDisplayName_NoAlias(t *testing.T) {
	s, _ := newTestStore()

	for _, id := range []string{"a1b2c3", `evil<id>"`, ""} {
		assert.Equal(t, sanitize.Sanitize(id), s.DisplayName(id))
	}
}

func TestSet_WhitespaceNeverSets(t *testing.T) {
	s, kv := newTestStore()

	require.NoError(t, s.Set("s1", "  "))
	assert.Equal(t, "s1", s.DisplayName("s1"))
	assert.Equal(t, 0, kv.Len())
}

func TestSet_SanitizesName(t *testing.T) {
	s, kv := newTestStore()

	require.NoError(t, s.Set("s1", `Room<1>"`))
	assert.Equal(t, "Room1", s.DisplayName("s1"))

	stored, ok, err := kv.Get("s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Room1", stored)
}

func TestSet_TrimsName(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Set("s1", "  Kitchen \t"))
	assert.Equal(t, "Kitchen", s.DisplayName("s1"))
}

func TestSet_OnlyUnsafeCharactersClears(t *testing.T) {
	s, kv := newTestStore()

	require.NoError(t, s.Set("s1", "Attic"))
	require.NoError(t, s.Set("s1", ` <"> `))
	assert.Equal(t, "s1", s.DisplayName("s1"))
	assert.Equal(t, 0, kv.Len())
}

func TestSet_Overwrites(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Set("s1", "Attic"))
	require.NoError(t, s.Set("s1", "Cellar"))
	assert.Equal(t, "Cellar", s.DisplayName("s1"))
}

func TestClear(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Set("s1", "Kitchen"))
	require.NoError(t, s.Clear("s1"))
	assert.Equal(t, "s1", s.DisplayName("s1"))

	// clearing again is a no-op
	require.NoError(t, s.Clear("s1"))
}

func TestDisplayName_SanitizesStoredValue(t *testing.T) {
	s, kv := newTestStore()

	// written by something other than Store
	require.NoError(t, kv.Set("s1", `<b>Garage</b>`))
	assert.Equal(t, "bGarage/b", s.DisplayName("s1"))
}

func TestStore_KVErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := NewStore(&failingKV{err: boom}, nil)

	assert.Equal(t, "s1", s.DisplayName("s1"))

	err := s.Set("s1", "Kitchen")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	err = s.Clear("s1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
