// Package completer implements a filesystem path completer for the menu.
package completer

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	menu "github.com/joeycumines/go-menu"
	"github.com/joeycumines/go-menu/debug"
	istrings "github.com/joeycumines/go-menu/strings"
)

// FilePathCompletionSeparator is the set of characters a host should break
// words on when completing file paths: whitespace and the path separator.
var FilePathCompletionSeparator = string([]byte{' ', os.PathSeparator})

// FilePathCompleter completes file and directory names for the path under
// the cursor. Directory listings are cached per directory for the lifetime
// of the completer, so one instance should not outlive a shell session.
type FilePathCompleter struct {
	// Filter drops entries it returns false for. A nil Filter keeps
	// everything.
	Filter func(fi os.FileInfo) bool
	// IgnoreCase matches the typed prefix case-insensitively.
	IgnoreCase bool

	fileListCache map[string][]menu.Suggest
}

var _ menu.Completer = (*FilePathCompleter)(nil)

// cleanFilePath splits path into the directory to list and the base to match
// entries against, expanding a leading tilde and environment variables. A
// trailing separator means the whole path is a directory and there is
// nothing to match yet.
func cleanFilePath(path string) (dir, base string, err error) {
	if path == "" {
		return ".", "", nil
	}

	endsWithSeparator := path[len(path)-1] == os.PathSeparator

	if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
		me, err := user.Current()
		if err != nil {
			return "", "", err
		}
		path = filepath.Join(me.HomeDir, path[1:])
	}
	path = os.ExpandEnv(path)

	dir = filepath.Dir(path)
	base = filepath.Base(path)
	if endsWithSeparator {
		dir = path
		base = ""
	}
	return dir, base, nil
}

// Complete lists the directory of the path ending at pos and returns the
// entries matching its final component. The suggestions' spans cover that
// final component, so accepting one replaces only the partial name.
func (c *FilePathCompleter) Complete(text string, pos istrings.ByteNumber) []menu.Suggest {
	if c.fileListCache == nil {
		c.fileListCache = make(map[string][]menu.Suggest, 4)
	}

	pos = istrings.Clamp(pos, 0, istrings.Len(text))
	path := pathBeforeCursor(text, pos)

	dir, base, err := cleanFilePath(path)
	if err != nil {
		debug.Log("completer: cannot clean path " + path + ": " + err.Error())
		return nil
	}

	suggests, cached := c.fileListCache[dir]
	if !cached {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}
		suggests = make([]menu.Suggest, 0, len(entries))
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if c.Filter != nil && !c.Filter(info) {
				continue
			}
			suggests = append(suggests, menu.Suggest{Text: entry.Name()})
		}
		c.fileListCache[dir] = suggests
	}

	// The span covers the typed final component, not the expanded one.
	typedBase := path
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		typedBase = path[i+1:]
	}
	span := menu.Span{Start: pos - istrings.Len(typedBase), End: pos}

	filtered := menu.FilterHasPrefix(suggests, base, c.IgnoreCase)
	result := make([]menu.Suggest, len(filtered))
	for i, s := range filtered {
		s.Span = span
		result[i] = s
	}
	return result
}

// pathBeforeCursor returns the path token that ends at pos.
func pathBeforeCursor(text string, pos istrings.ByteNumber) string {
	before := text[:pos]
	if i := strings.LastIndexByte(before, ' '); i >= 0 {
		before = before[i+1:]
	}
	return before
}
