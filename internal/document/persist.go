package document

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/example/layerpaint/internal/shape"
)

// DefaultFile is the file used by save and load when none is configured.
const DefaultFile = "drawing.png"

// Save writes the flattened canvas to path as PNG.
func (d *Document) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := png.Encode(out, d.Render()); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save %s: closing file: %w", path, err)
	}
	log.Printf("saved %s", path)
	return nil
}

// Load decodes the image at path and installs it as the only record of the
// base layer, replacing that layer's history and background. Undo history
// is not restored. On error the document is unchanged; a missing file
// yields an error matching os.ErrNotExist.
func (d *Document) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	img, _, err := image.Decode(f)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if closeErr != nil {
		return fmt.Errorf("load %s: %w", path, closeErr)
	}
	d.layers[0].Reset(shape.NewRaster(img, image.Point{}))
	log.Printf("loaded %s", path)
	return nil
}

// DecodeFile reads an image file without touching any document.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
