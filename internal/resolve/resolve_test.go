package resolve

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "pathman/internal/errors"
)

func env(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func newFS(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fsys.MkdirAll(d, 0755))
	}
	return fsys
}

func TestExpand(t *testing.T) {
	r := New(afero.NewMemMapFs(), env(map[string]string{
		"SystemRoot":   `C:\Windows`,
		"LOCALAPPDATA": `C:\Users\me\AppData\Local`,
	}))

	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{"plain entry", `C:\Tools`, `C:\Tools`},
		{"leading reference", `%SystemRoot%\system32`, `C:\Windows\system32`},
		{"bare reference", `%SystemRoot%`, `C:\Windows`},
		{"embedded reference is ignored", `C:\x\%SystemRoot%`, `C:\x\%SystemRoot%`},
		{"path self reference", `%PATH%`, `%PATH%`},
		{"path self reference with suffix", `%PATH%\bin`, `%PATH%\bin`},
		{"path self reference with odd suffix", `%PATH%;C:\x`, `%PATH%;C:\x`},
		{"nested", `%LOCALAPPDATA%\Programs\Go\bin`, `C:\Users\me\AppData\Local\Programs\Go\bin`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Expand(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandUsesLastPercent(t *testing.T) {
	r := New(afero.NewMemMapFs(), env(map[string]string{`A%\x\%B`: `Z:`}))

	got, err := r.Expand(`%A%\x\%B%\tail`)
	require.NoError(t, err)
	assert.Equal(t, `Z:\tail`, got)
}

func TestExpandUndefined(t *testing.T) {
	r := New(afero.NewMemMapFs(), env(nil))

	for _, entry := range []string{`%NOPE%\bin`, `%`, `%%`} {
		_, err := r.Expand(entry)
		require.Error(t, err, entry)
		assert.True(t, perrors.IsErrorCode(err, perrors.ErrUndefinedVariable), entry)
	}
}

func TestExists(t *testing.T) {
	r := New(newFS(t, `C:\Tools`), env(nil))

	assert.True(t, r.Exists(`C:\Tools`))
	assert.False(t, r.Exists(`C:\Missing`))
	assert.False(t, r.Exists(""))
}

func TestResolvedExists(t *testing.T) {
	r := New(newFS(t, `C:\Tools`, `C:\Windows\system32`), env(map[string]string{
		"SystemRoot": `C:\Windows`,
		"GHOST":      `C:\Ghost`,
	}))

	tests := []struct {
		entry string
		want  bool
	}{
		{`C:\Tools`, true},
		{`C:\Missing`, false},
		{`%SystemRoot%\system32`, true},
		{`%GHOST%\bin`, false},
		{`%UNSET%\bin`, false},
		{`%PATH%`, false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ResolvedExists(tt.entry), "entry %q", tt.entry)
	}
}

func TestResolvedExistsLiteralWins(t *testing.T) {
	r := New(newFS(t, `%UNSET%\bin`), env(nil))
	assert.True(t, r.ResolvedExists(`%UNSET%\bin`))
}

func TestNormalize(t *testing.T) {
	n := Normalizer{
		WorkDir:     `D:\work`,
		ProgramRoot: `C:\`,
		HomeDir:     `C:\Users\me`,
	}

	tests := []struct {
		arg  string
		want string
	}{
		{".", `D:\work`},
		{"/", `C:\`},
		{`\`, `C:\`},
		{"~", `C:\Users\me`},
		{"x", "x"},
		{`\\server\share`, `\\server\share`},
		{`\\wsl$\Ubuntu\bin`, `\\wsl$\Ubuntu\bin`},
		{`project\bin`, `D:\work\project\bin`},
		{`\project\bin`, `D:\project\bin`},
		{`C:\Tools`, `C:\Tools`},
		{"C:/Tools/bin", `C:\Tools\bin`},
		{"project/bin", `project\bin`},
		{"bin", `D:\work\bin`},
		{".venv", `D:\work\.venv`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.arg), "arg %q", tt.arg)
	}

	assert.Equal(t, []string{`D:\work`, `D:\work\bin`}, n.NormalizeAll([]string{".", "bin"}))
}

func TestJoinWindows(t *testing.T) {
	assert.Equal(t, `D:\work\a`, JoinWindows(`D:\work`, "a"))
	assert.Equal(t, `D:\a`, JoinWindows(`D:\`, "a"))
	assert.Equal(t, `D:\a`, JoinWindows(`D:\work`, `\a`))
	assert.Equal(t, `E:\a`, JoinWindows(`D:\work`, `E:\a`))
	assert.Equal(t, "a", JoinWindows("", "a"))
}

func TestProgramRoot(t *testing.T) {
	assert.Equal(t, `C:\`, ProgramRoot(`C:\tools\pathman.exe`))
	assert.Equal(t, `d:\`, ProgramRoot(`d:\x.exe`))
	assert.Equal(t, `\`, ProgramRoot("/usr/local/bin/pathman"))
}
