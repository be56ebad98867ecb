package internal

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Draw entities in the order given onto a new width x height context with a
// black background. Board coordinates map to pixels one to one, with the
// origin at the top left, as on the board.
func DrawEntities(entities []Entity, width, height int) *gg.Context {
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetLineWidth(1)
	for _, e := range entities {
		Render(e).Draw(c)
	}
	return c
}

// Draw the store's sorted view on a board
func DrawStore(s *Store, board BoardOptions) *gg.Context {
	return DrawEntities(s.Sorted(), board.Width, board.Height)
}

func WritePNG(s *Store, board BoardOptions, w io.Writer) error {
	return errors.Wrap(DrawStore(s, board).EncodePNG(w), "encoding png")
}

func SavePNG(s *Store, board BoardOptions, path string) error {
	return errors.Wrapf(DrawStore(s, board).SavePNG(path), "saving %s", path)
}

// Print the board inline in an iTerm terminal
func Imgcat(s *Store, board BoardOptions, out *os.File) error {
	f, err := os.CreateTemp("", "arrangement-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SavePNG(s, board, path); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}
