package nrrd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Image is a typed, contiguous N-dimensional pixel buffer. The element at
// coordinate (c0, c1, ...) lives at flat offset c0 + c1*s0 + c2*s0*s1 + ...:
// the first axis varies fastest. Encode and decode share this convention,
// so a record round-trips bit-exactly.
type Image[T Scalar] struct {
	pixels []T
	sizes  []int
}

// NewImage allocates an image of the given per-axis sizes with every pixel
// set to background.
func NewImage[T Scalar](background T, sizes ...int) *Image[T] {
	count := 1
	for _, s := range sizes {
		count *= s
	}
	pixels := make([]T, count)
	if background != *new(T) {
		for i := range pixels {
			pixels[i] = background
		}
	}
	return &Image[T]{pixels: pixels, sizes: slices.Clone(sizes)}
}

// Dimension returns the number of axes.
func (im *Image[T]) Dimension() int { return len(im.sizes) }

// Sizes returns the per-axis sizes.
func (im *Image[T]) Sizes() []int { return im.sizes }

// Pixels returns the backing buffer in stride order.
func (im *Image[T]) Pixels() []T { return im.pixels }

// PixelCount returns the total number of pixels.
func (im *Image[T]) PixelCount() int { return len(im.pixels) }

// At returns the pixel at the given coordinates.
func (im *Image[T]) At(coords ...int) T {
	return im.pixels[im.offset(coords)]
}

// Set stores v at the given coordinates.
func (im *Image[T]) Set(v T, coords ...int) {
	im.pixels[im.offset(coords)] = v
}

func (im *Image[T]) offset(coords []int) int {
	if len(coords) != len(im.sizes) {
		panic(fmt.Sprintf("nrrd: %d coordinates for a %d-dimensional image",
			len(coords), len(im.sizes)))
	}
	offset, stride := 0, 1
	for i, c := range coords {
		offset += c * stride
		stride *= im.sizes[i]
	}
	return offset
}

// ImageFromNrrd reconstructs a typed image from a parsed record. The
// record must be dim-dimensional, declare exactly T's pixel type, and use
// the raw encoding; anything else fails with the matching sentinel error.
func ImageFromNrrd[T Scalar](rec *Nrrd, dim int) (*Image[T], error) {
	if rec.Dimension() != dim {
		return nil, fmt.Errorf("%w: record is %d-dimensional, want %d",
			ErrDimensionMismatch, rec.Dimension(), dim)
	}
	pt := PixelTypeOf[T]()
	if rec.PixelType() != pt {
		return nil, fmt.Errorf("%w: record has %s, want %s",
			ErrPixelTypeMismatch, rec.PixelType(), pt)
	}
	if rec.Encoding().Kind != EncodingRaw {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, rec.Encoding())
	}

	sizes := slices.Clone(rec.Sizes())
	count := 1
	for _, s := range sizes {
		count *= s
	}

	// Records built by Read have already had their payload length checked,
	// but a record can also arrive here via ReadHeader with no payload at
	// all. Decoding indexes the buffer by shape, so re-check here rather
	// than panic.
	width := pt.Size()
	if count < 0 {
		return nil, malformed(0, "invalid sizes %v", sizes)
	}
	if len(rec.Buffer()) != count*width {
		return nil, malformed(0, "buffer size mismatch: got %d bytes, want %d",
			len(rec.Buffer()), count*width)
	}

	endian := rec.Endian()
	buf := rec.Buffer()
	pixels := make([]T, count)
	for i := range pixels {
		pixels[i] = DecodeScalar[T](buf[i*width:], endian)
	}
	return &Image[T]{pixels: pixels, sizes: sizes}, nil
}

// ReadImage parses a complete NRRD stream and reconstructs it as a typed
// dim-dimensional image in one call.
func ReadImage[T Scalar](r io.Reader, dim int) (*Image[T], error) {
	rec, err := Read(r)
	if err != nil {
		return nil, err
	}
	return ImageFromNrrd[T](rec, dim)
}

// Nrrd encodes the image as an on-disk record: newest format revision,
// raw encoding, little-endian payload, and the structural fields
// synthesized from the image's type and shape. A zero-dimensional image
// (one pixel, no axes) is encoded as a single-element axis, since the
// header format requires a positive dimension.
func (im *Image[T]) Nrrd() *Nrrd {
	pt := PixelTypeOf[T]()
	width := pt.Size()
	endian := LittleEndian

	buf := make([]byte, len(im.pixels)*width)
	for i, p := range im.pixels {
		EncodeScalar(p, buf[i*width:], endian)
	}

	sizes := slices.Clone(im.sizes)
	if len(sizes) == 0 {
		sizes = []int{1}
	}
	sizeTokens := make([]string, len(sizes))
	for i, s := range sizes {
		sizeTokens[i] = strconv.Itoa(s)
	}

	rec := newRecord(Nrrd5)
	rec.dimension = len(sizes)
	rec.sizes = sizes
	rec.pixelType = pt
	rec.encoding = Encoding{Kind: EncodingRaw}
	rec.endian = endian
	rec.buffer = buf
	rec.addField(Field{Identifier: "type", Descriptor: pt.String()})
	rec.addField(Field{Identifier: "dimension", Descriptor: strconv.Itoa(len(sizes))})
	rec.addField(Field{Identifier: "sizes", Descriptor: strings.Join(sizeTokens, " ")})
	rec.addField(Field{Identifier: "endian", Descriptor: endian.String()})
	rec.addField(Field{Identifier: "encoding", Descriptor: rec.encoding.String()})
	return rec
}
