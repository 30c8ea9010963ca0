package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(args []string) {
	topic := ""
	if len(args) > 0 {
		topic = strings.ToLower(args[0])
	}
	switch topic {
	case "glyph":
		pterm.Info.Println("glyph <name>...")
		pterm.Println(`
	Resolve glyph names to code points. Names are looked up in the built-in
	glyph list (and its ZapfDingbats variant), then matched against the
	numeric-escape conventions uniXXXX and uXXXX..XXXXXX.
	`)
	case "char":
		pterm.Info.Println("char <hex codepoint>")
		pterm.Println(`
	Classify a code point (diacritic / whitespace) and report legacy
	Private-Use-Area remappings.
	`)
	case "range":
		pterm.Info.Println("range <hex codepoint>")
		pterm.Println(`
	Report the font-coverage sub-range (OS/2 ulUnicodeRange bit) containing
	a code point.
	`)
	case "norm":
		pterm.Info.Println("norm <hex codepoint>")
		pterm.Println(`
	Show the decomposition of a ligature or precomposed character, in both
	logical and visual reading order.
	`)
	case "text":
		pterm.Info.Println("text <glyphname>...")
		pterm.Println(`
	Run the full glyph-to-text pipeline over a sequence of glyph names.
	`)
	case "coverage":
		pterm.Info.Println("coverage")
		pterm.Println(`
	Derive the ulUnicodeRange coverage bitfield of the loaded font
	(start the CLI with -font <file>).
	`)
	default:
		pterm.Info.Println("Commands: glyph char range norm text coverage help quit")
		pterm.Println("\n\ttry 'help <command>' for details\n")
	}
}
