package store

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "pathman/internal/errors"
	"pathman/internal/model"
)

func TestSplitJoinRoundTrip(t *testing.T) {
	values := []string{
		"",
		`C:\A`,
		`C:\A;C:\B`,
		`C:\A;;C:\B`,
		`C:\A;C:\B;`,
		`%SystemRoot%\system32;C:\Tools`,
	}
	for _, v := range values {
		assert.Equal(t, v, Join(Split(v)), "value %q", v)
	}
	assert.Empty(t, Split(""))
	assert.Equal(t, model.ScopeList{`C:\A`, `C:\B`}, Split(`C:\A;C:\B`))
}

func TestReadFiltersSystemSelfReference(t *testing.T) {
	b := NewMemoryBackend(`C:\U;%PATH%`, `C:\Tools;%PATH%;C:\Missing`)
	s := New(b)

	sys, err := s.Read(model.System)
	require.NoError(t, err)
	assert.Equal(t, model.ScopeList{`C:\Tools`, `C:\Missing`}, sys)

	user, err := s.Read(model.User)
	require.NoError(t, err)
	assert.Equal(t, model.ScopeList{`C:\U`, `%PATH%`}, user)
}

func TestAddAppendsOnce(t *testing.T) {
	b := NewMemoryBackend(`C:\A;C:\B`, "")
	s := New(b)

	changed, err := s.Add(model.User, `C:\NewTool`)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `C:\A;C:\B;C:\NewTool`, b.Values[model.User])

	changed, err = s.Add(model.User, `C:\NewTool`)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, `C:\A;C:\B;C:\NewTool`, b.Values[model.User])
}

func TestAddIsExactMatch(t *testing.T) {
	b := NewMemoryBackend(`C:\Tools`, "")
	s := New(b)

	for _, variant := range []string{`c:\tools`, `C:\Tools\`} {
		changed, err := s.Add(model.User, variant)
		require.NoError(t, err)
		assert.True(t, changed, variant)
	}
	assert.Equal(t, `C:\Tools;c:\tools;C:\Tools\`, b.Values[model.User])
}

func TestAddRejectsSeparator(t *testing.T) {
	b := NewMemoryBackend(`C:\A`, "")
	s := New(b)

	_, err := s.Add(model.User, `C:\X;C:\Y`)
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrInvalidInput))
	assert.Equal(t, `C:\A`, b.Values[model.User])
	assert.Zero(t, b.Sets)
}

func TestAddThenRemoveRestores(t *testing.T) {
	b := NewMemoryBackend(`C:\A;C:\B`, `C:\Windows`)
	s := New(b)

	for _, scope := range []model.Scope{model.User, model.System} {
		before := b.Values[scope]
		_, err := s.Add(scope, `D:\bin`)
		require.NoError(t, err)
		n, err := s.Remove(scope, `D:\bin`)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, before, b.Values[scope])
	}
}

func TestRemoveDropsEveryMatch(t *testing.T) {
	b := NewMemoryBackend(`C:\A;C:\B;C:\A;C:\C;C:\A`, "")
	s := New(b)

	n, err := s.Remove(model.User, `C:\A`)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, `C:\B;C:\C`, b.Values[model.User])
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	b := NewMemoryBackend(`C:\A`, "")
	s := New(b)

	n, err := s.Remove(model.User, `C:\Nope`)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, b.Sets)
	assert.Equal(t, `C:\A`, b.Values[model.User])
}

func TestHas(t *testing.T) {
	s := New(NewMemoryBackend(`C:\A`, `C:\S`))

	ok, err := s.Has(model.User, `C:\A`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Has(model.System, `C:\A`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageFailures(t *testing.T) {
	b := NewMemoryBackend(`C:\A`, `C:\S`)
	b.GetErr[model.System] = errors.New("access denied")
	b.SetErr[model.User] = errors.New("read-only hive")
	s := New(b)

	_, err := s.Read(model.System)
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrStorageUnavailable))

	_, err = s.Add(model.User, `C:\B`)
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrStorageUnavailable))
	assert.Contains(t, err.Error(), "read-only hive")
	assert.Equal(t, `C:\A`, b.Values[model.User])
}

func TestUpdateSingleRoundTrip(t *testing.T) {
	b := NewMemoryBackend(`C:\A;C:\B`, "")
	s := New(b)

	err := s.Update(model.User, func(l model.ScopeList) model.ScopeList {
		l, _ = l.Without(`C:\A`)
		return append(l, `C:\C`, `C:\D`)
	})
	require.NoError(t, err)
	assert.Equal(t, `C:\B;C:\C;C:\D`, b.Values[model.User])
	assert.Equal(t, 1, b.Gets)
	assert.Equal(t, 1, b.Sets)

	err = s.Update(model.User, func(l model.ScopeList) model.ScopeList { return l })
	require.NoError(t, err)
	assert.Equal(t, 1, b.Sets, "unchanged list is not written back")
}

func TestFileBackend(t *testing.T) {
	fsys := afero.NewMemMapFs()
	b := NewFileBackend(fsys, "/state/paths.yaml")

	v, err := b.Get(model.User)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, b.Set(model.User, `C:\A;C:\B`))
	require.NoError(t, b.Set(model.System, `C:\Windows;%PATH%`))

	s := New(NewFileBackend(fsys, "/state/paths.yaml"))
	user, err := s.Read(model.User)
	require.NoError(t, err)
	assert.Equal(t, model.ScopeList{`C:\A`, `C:\B`}, user)

	sys, err := s.Read(model.System)
	require.NoError(t, err)
	assert.Equal(t, model.ScopeList{`C:\Windows`}, sys)
}

func TestFileBackendCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/paths.yaml", []byte("user: [unterminated"), 0644))

	_, err := New(NewFileBackend(fsys, "/paths.yaml")).Read(model.User)
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrStorageUnavailable))
}
