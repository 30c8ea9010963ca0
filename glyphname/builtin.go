package glyphname

import (
	"bufio"
	"embed"
	"strconv"
	"strings"
	"sync"
)

// The built-in tables are distilled from the Adobe Glyph List: one
// "name;HEX" entry per line, '#' starts a comment line.
//
//go:embed glyphlist.txt zapfdingbats.txt
var glyphData embed.FS

var (
	builtinOnce     sync.Once
	builtinGlyphs   Table
	builtinDingbats Table
)

// BuiltinGlyphs returns the built-in base glyph-name table. The table is
// parsed from embedded data on first use and cached for the lifetime of the
// process; callers must treat it as read-only.
func BuiltinGlyphs() Table {
	loadBuiltinTables()
	return builtinGlyphs
}

// BuiltinDingbats returns the built-in glyph-name table for the
// ZapfDingbats symbol encoding. Callers must treat it as read-only.
func BuiltinDingbats() Table {
	loadBuiltinTables()
	return builtinDingbats
}

func loadBuiltinTables() {
	builtinOnce.Do(func() {
		builtinGlyphs = parseGlyphList("glyphlist.txt")
		builtinDingbats = parseGlyphList("zapfdingbats.txt")
		tracer().Debugf("loaded %d + %d built-in glyph names",
			len(builtinGlyphs), len(builtinDingbats))
	})
}

// parseGlyphList reads an embedded glyph list. The data is fixed at compile
// time, so a malformed list is a programming error and panics.
func parseGlyphList(file string) Table {
	fd, err := glyphData.Open(file)
	if err != nil {
		panic("invalid glyph list " + file)
	}
	defer fd.Close()

	t := make(Table)
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		name, hex, ok := strings.Cut(line, ";")
		if !ok {
			panic("corrupted glyph list " + file)
		}
		code, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			panic("corrupted glyph list " + file)
		}
		t[name] = rune(code)
	}
	if err := scanner.Err(); err != nil {
		panic("corrupted glyph list " + file)
	}
	return t
}
