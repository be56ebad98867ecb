package internal

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options for the drawing board that hosts an arrangement.
type BoardOptions struct {
	// Give each piece of a split segment its own random stroke color
	RandomColor bool `yaml:"randomColor"`
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
}

func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		RandomColor: false,
		Width:       500,
		Height:      500,
	}
}

// Read board options from YAML. Keys missing from the document keep their
// defaults, and an empty document gives the defaults.
func LoadBoardOptions(r io.Reader) (BoardOptions, error) {
	opts := DefaultBoardOptions()
	err := yaml.NewDecoder(r).Decode(&opts)
	if err != nil && err != io.EOF {
		return BoardOptions{}, errors.Wrap(err, "decoding board options")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return BoardOptions{}, errors.Errorf("board size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	return opts, nil
}
