// Command glyphcode loads a font, selects its glyphs under an encoding and
// prints the resulting codepoint table.
//
// Usage:
//
//	glyphcode [-font icons.ttf] [-encoding pua|ascii|unicode] [-parser ximage|gotext]
//	          [-from 0x20] [-to 0x10FFFF] [-select name,name,...] [-v]
//
// Without -font, the embedded Go Regular font is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphcode"
	"github.com/gogpu/glyphcode/fontset"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("glyphcode: %v", err)
	}
}

type options struct {
	font     string
	encoding string
	parser   string
	from     string
	to       string
	selected string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("glyphcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.font, "font", "", "font file (TTF/OTF); default is the embedded Go Regular")
	fs.StringVar(&o.encoding, "encoding", string(glyphcode.EncodingUnicode), "encoding: pua, ascii or unicode")
	fs.StringVar(&o.parser, "parser", "ximage", "font parser: "+strings.Join(fontset.Parsers(), ", "))
	fs.StringVar(&o.from, "from", "0x20", "lowest code to import")
	fs.StringVar(&o.to, "to", "0x10FFFF", "highest code to import")
	fs.StringVar(&o.selected, "select", "", "comma-separated glyph names to select; default selects all")
	fs.BoolVar(&o.verbose, "v", false, "debug logging to stderr")
	err := fs.Parse(args)
	return o, err
}

// parseCode accepts Go integer literals (0xE800, 59392) and U+E800.
func parseCode(s string) (glyphcode.Codepoint, error) {
	s = strings.TrimSpace(s)
	base := 0
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		s, base = rest, 16
	}
	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q", s)
	}
	return glyphcode.Codepoint(v), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.verbose {
		glyphcode.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer glyphcode.SetLogger(nil)
	}

	enc, err := glyphcode.ParseEncoding(o.encoding)
	if err != nil {
		return err
	}
	from, err := parseCode(o.from)
	if err != nil {
		return err
	}
	to, err := parseCode(o.to)
	if err != nil {
		return err
	}

	loadOpts := []fontset.Option{fontset.WithParser(o.parser), fontset.WithCodeRange(from, to)}
	var set *fontset.Set
	if o.font == "" {
		set, err = fontset.Load(goregular.TTF, loadOpts...)
	} else {
		set, err = fontset.LoadFile(o.font, loadOpts...)
	}
	if err != nil {
		return err
	}

	tr := glyphcode.NewTracker(glyphcode.WithEncoding(glyphcode.NewSetting(enc)))
	if err := set.ObserveAll(tr); err != nil {
		return err
	}

	if o.selected == "" {
		if err := set.SelectAll(); err != nil {
			return err
		}
	} else {
		for _, name := range strings.Split(o.selected, ",") {
			name = strings.TrimSpace(name)
			g := set.Lookup(name)
			if g == nil {
				return fmt.Errorf("no glyph named %q in %s", name, set.Family())
			}
			if err := g.Select(); err != nil {
				return fmt.Errorf("select %s: %w", name, err)
			}
		}
	}

	return printTable(stdout, set, tr)
}

func printTable(w io.Writer, set *fontset.Set, tr *glyphcode.Tracker) error {
	fmt.Fprintf(w, "# %s (%s, %s): %d glyphs, %d selected, %d private use codes free\n",
		set.Family(), set.Parser(), tr.Encoding(), set.Len(), tr.Registry().Len(), tr.Registry().FreePrivateUse())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GLYPH\tORIGINAL\tCODE\tNAME")
	for code, g := range tr.Registry().All() {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\n", g.Name(), g.OriginalCode(), code, code.Name())
	}
	return tw.Flush()
}
