package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/arrange/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("arrange", "Subdivide a set of line segments at their crossings.")

	configPath  = app.Flag("config", "YAML file with board options.").ExistingFile()
	svgPath     = app.Flag("svg", "Read <line> and <circle> elements from an SVG file instead of stdin.").ExistingFile()
	pngPath     = app.Flag("png", "Render the arrangement to a PNG file.").String()
	showImage   = app.Flag("imgcat", "Print the rendered arrangement inline (iTerm only).").Bool()
	randomColor = app.Flag("random-color", "Give every split piece a random stroke color.").Bool()
	seed        = app.Flag("seed", "Seed for random colors.").Default("1").Int64()
	snap        = app.Flag("snap", "Snap stdin segments to horizontal or vertical.").Bool()
	width       = app.Flag("width", "Board width in pixels, overriding the config.").Int()
	height      = app.Flag("height", "Board height in pixels, overriding the config.").Int()
	verbose     = app.Flag("verbose", "Log every insertion, crossing and split to stderr.").Short('v').Bool()
)

// Builds an arrangement from segments and points and prints the result.
//
// Input on stdin is one entity per line: "x1 y1 x2 y2" for a segment, "x y"
// for a point. Blank lines and lines starting with # are skipped. With --svg,
// the <line> and <circle> elements of an SVG file are read instead.
// Entities are inserted in input order.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Entity names are printed to stdout, and to stderr with --verbose
	internal.SetColor(isTerminal(os.Stdout) && (!*verbose || isTerminal(os.Stderr)))

	if *verbose {
		internal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arrange:", err)
		os.Exit(1)
	}
}

func run() error {
	board, err := loadBoard()
	if err != nil {
		return err
	}

	store := internal.NewStore()
	var entities []internal.Entity
	if *svgPath != "" {
		entities, err = readSVGFile(*svgPath, store)
	} else {
		entities, err = readEntities(os.Stdin, store, *snap)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Read %d entities\n", len(entities))

	var opts []internal.InsertOption
	if board.RandomColor {
		opts = append(opts, internal.WithRandomColor(rand.New(rand.NewSource(*seed))))
	}
	if _, err := store.InsertMany(entities, opts...); err != nil {
		return err
	}

	for _, e := range store.Sorted() {
		fmt.Println(e)
	}
	if unresolved := store.UnresolvedCrossings(); len(unresolved) > 0 {
		return errors.Errorf("%d crossings left unresolved", len(unresolved))
	}

	if *pngPath != "" {
		if err := internal.SavePNG(store, board, *pngPath); err != nil {
			return err
		}
	}
	if *showImage {
		return internal.Imgcat(store, board, os.Stdout)
	}
	return nil
}

func loadBoard() (internal.BoardOptions, error) {
	board := internal.DefaultBoardOptions()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return board, errors.Wrap(err, "opening config")
		}
		defer f.Close()
		board, err = internal.LoadBoardOptions(f)
		if err != nil {
			return board, errors.Wrapf(err, "loading %s", *configPath)
		}
	}

	// Flags win over the config file
	if *randomColor {
		board.RandomColor = true
	}
	if *width > 0 {
		board.Width = *width
	}
	if *height > 0 {
		board.Height = *height
	}
	return board, nil
}

func readSVGFile(path string, ids internal.IDSource) ([]internal.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return internal.ReadSVG(f, ids)
}

func readEntities(in io.Reader, ids internal.IDSource, snap bool) ([]internal.Entity, error) {
	var entities []internal.Entity
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entity, err := parseEntity(line, ids, snap)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		entities = append(entities, entity)
	}
	return entities, errors.Wrap(scanner.Err(), "reading input")
}

func parseEntity(line string, ids internal.IDSource, snap bool) (internal.Entity, error) {
	fields := strings.Fields(line)
	coords := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("invalid coordinate %q", field)
		}
		coords[i] = value
	}

	switch len(coords) {
	case 2:
		return internal.NewPoint(ids, coords[0], coords[1], nil), nil
	case 4:
		return internal.NewSegment(ids, coords[0], coords[1], coords[2], coords[3], &internal.Extra{Edge: true, Snap: snap}), nil
	}
	return nil, errors.Errorf("expected 2 or 4 coordinates, got %d", len(coords))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
