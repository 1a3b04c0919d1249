package resolve

import "strings"

// Normalizer turns command-line path arguments into the form stored in PATH.
// Joins follow Windows rules whatever the host OS is, so results do not
// depend on where pathman runs.
type Normalizer struct {
	WorkDir     string // directory pathman was started from
	ProgramRoot string // root of the drive holding the executable, e.g. `C:\`
	HomeDir     string
}

// Normalize rewrites one argument:
//
//	.              working directory
//	/ or \         ProgramRoot
//	~              home directory
//	\\server\share unchanged
//	has a '\'      joined onto the working directory
//	otherwise      '/' becomes '\'; still no '\' means joined onto the working directory
//
// Other single-character arguments are kept as given.
func (n Normalizer) Normalize(arg string) string {
	if len(arg) == 1 {
		switch arg {
		case ".":
			return n.WorkDir
		case "/", `\`:
			return n.ProgramRoot
		case "~":
			return n.HomeDir
		}
		return arg
	}

	if strings.HasPrefix(arg, `\\`) {
		return arg
	}
	if strings.Contains(arg, `\`) {
		return JoinWindows(n.WorkDir, arg)
	}

	arg = strings.ReplaceAll(arg, "/", `\`)
	if !strings.Contains(arg, `\`) {
		return JoinWindows(n.WorkDir, arg)
	}
	return arg
}

// NormalizeAll applies Normalize to every argument.
func (n Normalizer) NormalizeAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = n.Normalize(a)
	}
	return out
}

// JoinWindows joins elem onto base the way Windows path joining does: a
// drive-qualified elem replaces base, a rooted elem keeps only base's drive,
// anything else is appended with a single '\'.
func JoinWindows(base, elem string) string {
	if base == "" {
		return elem
	}
	if volumeName(elem) != "" {
		return elem
	}
	if strings.HasPrefix(elem, `\`) || strings.HasPrefix(elem, "/") {
		return volumeName(base) + elem
	}
	if strings.HasSuffix(base, `\`) || strings.HasSuffix(base, "/") {
		return base + elem
	}
	return base + `\` + elem
}

// ProgramRoot returns the drive root of a Windows executable path, e.g.
// `C:\` for `C:\tools\pathman.exe`. Paths without a drive yield `\`.
func ProgramRoot(exe string) string {
	if v := volumeName(exe); len(v) == 2 {
		return v + `\`
	}
	return `\`
}

func volumeName(p string) string {
	if len(p) >= 2 && p[1] == ':' && isLetter(p[0]) {
		return p[:2]
	}
	return ""
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
