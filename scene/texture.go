package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is wrapped by TextureLoadError when the file's content is not
// a recognised image type.
var ErrNotImage = errors.New("not an image")

// TextureLoadError reports an image that could not be read or decoded.
// Callers choose between a fallback texture and giving up.
type TextureLoadError struct {
	Path string
	Err  error
}

func (e *TextureLoadError) Error() string {
	return fmt.Sprintf("load texture %q: %v", e.Path, e.Err)
}

func (e *TextureLoadError) Unwrap() error { return e.Err }

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format, 4 bytes per pixel, rows bottom-to-top so the
	// first row is sampled at t=0 as OpenGL expects.
	Pixels []byte
}

// LoadTexture reads a PNG, JPEG, BMP, TIFF or WebP file from disk. Images
// whose longer side exceeds maxSize are downscaled, keeping the aspect
// ratio; maxSize 0 keeps the original size.
func LoadTexture(path string, maxSize int) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: err}
	}
	return decodeTexture(path, data, maxSize)
}

// LoadTextureFS is LoadTexture for a file inside fsys.
func LoadTextureFS(fsys fs.FS, name string, maxSize int) (*Texture, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &TextureLoadError{Path: name, Err: err}
	}
	return decodeTexture(name, data, maxSize)
}

func decodeTexture(name string, data []byte, maxSize int) (*Texture, error) {
	if !filetype.IsImage(data) {
		return nil, &TextureLoadError{Path: name, Err: ErrNotImage}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			kind, _ := filetype.Match(data)
			err = fmt.Errorf("unsupported image format %q", kind.Extension)
		}
		return nil, &TextureLoadError{Path: name, Err: err}
	}

	b := img.Bounds()
	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		img = resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)
	}

	rgba := transform.FlipV(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	pixels := rgba.Pix
	if rgba.Stride != w*4 {
		pixels = make([]byte, 0, w*h*4)
		for y := 0; y < h; y++ {
			pixels = append(pixels, rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4]...)
		}
	}

	return &Texture{
		Name:   name,
		Width:  w,
		Height: h,
		Pixels: pixels,
	}, nil
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// NewCheckerTexture creates a size x size checkerboard of 8x8 cells.
func NewCheckerTexture(name string, size int, c1, c2 color.RGBA) *Texture {
	if size < 1 {
		size = 1
	}
	pixels := make([]byte, size*size*4)
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := (y*size + x) * 4
			c := c2
			if ((x/blockSize)+(y/blockSize))%2 == 0 {
				c = c1
			}
			pixels[idx] = c.R
			pixels[idx+1] = c.G
			pixels[idx+2] = c.B
			pixels[idx+3] = c.A
		}
	}

	return &Texture{
		Name:   name,
		Width:  size,
		Height: size,
		Pixels: pixels,
	}
}
