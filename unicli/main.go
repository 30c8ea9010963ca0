package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uniglyph"
	"github.com/npillmayer/uniglyph/glyphname"
	"github.com/npillmayer/uniglyph/internal/fontload"
	"github.com/npillmayer/uniglyph/unicat"
	"github.com/npillmayer/uniglyph/uninorm"
	"github.com/npillmayer/uniglyph/unirange"
	"github.com/pterm/pterm"
)

// tracer traces with key 'uniglyph.cli'
func tracer() tracing.Trace {
	return tracing.Select("uniglyph.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.uniglyph.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to probe for coverage")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the glyph/Unicode CLI")
	//
	// set up REPL
	repl, err := readline.New("uniglyph > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:     repl,
		glyphs:   glyphname.BuiltinGlyphs(),
		dingbats: glyphname.BuiltinDingbats(),
	}
	//
	// optionally load a font for the coverage command
	if *fontname != "" {
		if intp.font, err = fontload.LoadOpenTypeFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		pterm.Info.Println("Loaded font " + intp.font.Fontname)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	font     *fontload.ScalableFont
	glyphs   glyphname.Table
	dingbats glyphname.Table
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd []string) (quit bool, err error) {
	switch cmd[0] {
	case "quit":
		return true, nil
	case "help":
		help(cmd[1:])
	case "glyph":
		err = intp.glyphOp(cmd[1:])
	case "char":
		err = intp.charOp(cmd[1:])
	case "range":
		err = intp.rangeOp(cmd[1:])
	case "norm":
		err = intp.normOp(cmd[1:])
	case "text":
		err = intp.textOp(cmd[1:])
	case "coverage":
		err = intp.coverageOp()
	default:
		err = fmt.Errorf("unknown command: %s", cmd[0])
	}
	return false, err
}

// glyphOp resolves glyph names, consulting the built-in glyph list and the
// dingbats variant.
func (intp *Intp) glyphOp(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: glyph <name>...")
	}
	for _, name := range args {
		r := glyphname.UnicodeForGlyph(name, intp.glyphs)
		if r == glyphname.NoUnicode {
			r = glyphname.UnicodeForGlyph(name, intp.dingbats)
		}
		if r == glyphname.NoUnicode {
			pterm.Printf("glyph %q does not resolve to a code point\n", name)
			continue
		}
		pterm.Printf("glyph %q = U+%04X %q\n", name, r, string(r))
	}
	return nil
}

func (intp *Intp) charOp(args []string) error {
	r, err := argCodepoint(args)
	if err != nil {
		return err
	}
	cat := unicat.CategoryOf(r)
	pterm.Printf("U+%04X: diacritic=%v whitespace=%v\n", r, cat.IsDiacritic, cat.IsWhitespace)
	if mapped := unicat.MapSpecialValue(r); mapped != r {
		if mapped == unicat.NoChar {
			pterm.Printf("U+%04X is an unmapped legacy code point (no character)\n", r)
		} else {
			pterm.Printf("U+%04X is a legacy alias of U+%04X %q\n", r, mapped, string(mapped))
		}
	}
	return nil
}

func (intp *Intp) rangeOp(args []string) error {
	r, err := argCodepoint(args)
	if err != nil {
		return err
	}
	inx := unirange.RangeFor(r)
	if inx == unirange.NoRange {
		pterm.Printf("U+%04X is not in any font-coverage sub-range\n", r)
		return nil
	}
	pterm.Printf("U+%04X is in font-coverage sub-range %d\n", r, inx)
	return nil
}

func (intp *Intp) normOp(args []string) error {
	r, err := argCodepoint(args)
	if err != nil {
		return err
	}
	decomposed, ok := uninorm.NormalizedUnicodes()[r]
	if !ok {
		pterm.Printf("U+%04X has no decomposition\n", r)
		return nil
	}
	pterm.Printf("U+%04X decomposes to %+q, reads as %q\n", r, decomposed,
		uninorm.ReverseIfRTL(decomposed))
	return nil
}

func (intp *Intp) textOp(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: text <glyphname>...")
	}
	pterm.Printf("extracted text: %q\n", uniglyph.TextForGlyphs(args, intp.glyphs))
	return nil
}

func (intp *Intp) coverageOp() error {
	if intp.font == nil {
		return errors.New("no font loaded; start with -font <file>")
	}
	bits, err := unirange.FontCoverage(intp.font.SFNT)
	if err != nil {
		return err
	}
	pterm.Printf("%s declares coverage %s\n", intp.font.Fontname, bits)
	pterm.Printf("covered sub-ranges: %v\n", bits.Indexes())
	return nil
}

func argCodepoint(args []string) (rune, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a single code point argument")
	}
	arg := strings.TrimPrefix(strings.TrimPrefix(args[0], "U+"), "0x")
	val, err := strconv.ParseInt(arg, 16, 32)
	if err != nil || val < 0 || val > 0x10FFFF {
		return 0, fmt.Errorf("not a code point: %s", args[0])
	}
	return rune(val), nil
}
