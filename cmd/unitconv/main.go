package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jhunt/go-cli"
	"github.com/jhunt/go-log"

	"github.com/sfun/alfred-unit-converter/pkg/converter"
	"github.com/sfun/alfred-unit-converter/pkg/parser"
	"github.com/sfun/alfred-unit-converter/pkg/store"
)

type options struct {
	Help    bool   `cli:"-h, --help"`
	Debug   bool   `cli:"-D, --debug"`
	DB      string `cli:"-d, --db"`
	Integer bool   `cli:"--integer"`
	Strict  bool   `cli:"--strict"`
	Add     string `cli:"-a, --add"`
	List    bool   `cli:"-l, --list"`
}

const (
	exitOK = iota
	exitConversion
	exitUsage
	exitStore
)

func main() {
	var opt options
	_, args, err := cli.Parse(&opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "!!! unitconv failed to parse command-line flags: %s\n", err)
		os.Exit(exitUsage)
	}

	log.SetupLogging(logConfig(opt.Debug))

	os.Exit(run(opt, args, os.Stdout, os.Stderr))
}

// logConfig 把日志写到 stderr，stdout 只输出换算结果
func logConfig(debug bool) log.LogConfig {
	level := "warning"
	if debug {
		level = "debug"
	}
	return log.LogConfig{Type: "console", File: "stderr", Level: level}
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "unitconv [OPTIONS] EXPRESSION\n\n")
	fmt.Fprintf(out, "  e.g. unitconv 10km to mile\n")
	fmt.Fprintf(out, "       unitconv -- -40C to F\n\n")
	fmt.Fprintf(out, "OPTIONS\n\n")
	fmt.Fprintf(out, "  -h, --help              Show this help screen.\n")
	fmt.Fprintf(out, "  -D, --debug             Enable debug logging.\n")
	fmt.Fprintf(out, "  -d, --db PATH           Custom unit database (default: $XDG_CONFIG_HOME/unitconv/units.db).\n")
	fmt.Fprintf(out, "      --integer           Only read the integer digits of the quantity.\n")
	fmt.Fprintf(out, "      --strict            Refuse to convert between unit families.\n")
	fmt.Fprintf(out, "  -a, --add SYM:F[:OFF]   Persist a custom unit before converting.\n")
	fmt.Fprintf(out, "  -l, --list              List all known units.\n")
}

func run(opt options, args []string, stdout, stderr io.Writer) int {
	if opt.Help {
		usage(stdout)
		return exitOK
	}
	if len(args) == 0 && opt.Add == "" && !opt.List {
		usage(stderr)
		return exitUsage
	}

	mode := parser.DecimalNumbers
	if opt.Integer {
		mode = parser.IntegerNumbers
	}
	eng := converter.New(converter.WithNumberMode(mode), converter.WithStrictFamilies(opt.Strict))

	path := opt.DB
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(stderr, "!!! unable to determine config directory: %s\n", err)
			return exitStore
		}
		path = filepath.Join(dir, "unitconv", "units.db")
	}
	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "!!! %s\n", err)
		return exitStore
	}
	defer st.Close()

	if opt.Add != "" {
		c, err := parseAdd(opt.Add)
		if err != nil {
			fmt.Fprintf(stderr, "!!! %s\n", err)
			return exitUsage
		}
		if err := st.Save(c); err != nil {
			fmt.Fprintf(stderr, "!!! %s\n", err)
			return exitStore
		}
		log.Infof("saved custom unit %s", c.Symbol)
	}

	if _, err := st.Apply(eng.Registry()); err != nil {
		fmt.Fprintf(stderr, "!!! %s\n", err)
		return exitStore
	}

	if opt.List {
		reg := eng.Registry()
		for _, symbol := range reg.Units() {
			c, _ := reg.Lookup(symbol)
			fmt.Fprintf(stdout, "%-8s factor=%g offset=%g %s\n", symbol, c.Factor, c.Offset, c.Family)
		}
		fmt.Fprintf(stdout, "prefixes: %s\n", strings.Join(reg.Prefixes(), " "))
	}

	if len(args) == 0 {
		return exitOK
	}
	out, err := eng.Convert(strings.Join(args, " "))
	if err != nil {
		log.Debugf("conversion failed: %s", err)
		fmt.Fprintf(stderr, "!!! %s\n", err)
		return exitConversion
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

// parseAdd 解析 "symbol:factor[:offset]"
func parseAdd(s string) (store.Conversion, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return store.Conversion{}, fmt.Errorf("invalid --add value '%s' (want SYMBOL:FACTOR[:OFFSET])", s)
	}
	c := store.Conversion{Symbol: parts[0]}
	var err error
	if c.Factor, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return store.Conversion{}, fmt.Errorf("invalid factor '%s': %w", parts[1], err)
	}
	if len(parts) == 3 {
		if c.Offset, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return store.Conversion{}, fmt.Errorf("invalid offset '%s': %w", parts[2], err)
		}
	}
	return c, nil
}
