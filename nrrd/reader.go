package nrrd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Read parses a complete NRRD stream: magic line, header body, blank
// separator, then the raw payload read to end of stream. The payload
// length is checked byte-for-byte against the declared shape and pixel
// type; a mismatch is a parse failure, not a warning.
func Read(r io.Reader) (*Nrrd, error) {
	br := bufio.NewReader(r)
	rec, err := readHeader(br, true)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	if want := rec.payloadSize(); len(payload) != want {
		return nil, malformed(0, "buffer size mismatch: got %d bytes, want %d", len(payload), want)
	}
	rec.buffer = payload
	return rec, nil
}

// ReadHeader parses a header with no trailing payload (detached-header
// use). The header ends at end of stream or at a blank line; the record's
// buffer is left empty and no payload size check is performed.
func ReadHeader(r io.Reader) (*Nrrd, error) {
	return readHeader(bufio.NewReader(r), false)
}

// readHeader runs the line state machine. Lines are numbered from 1, the
// magic line included, so errors point at the offending stream line.
func readHeader(br *bufio.Reader, expectPayload bool) (*Nrrd, error) {
	magic, err := readLine(br)
	if err != nil {
		if err == io.EOF {
			return nil, malformed(0, "empty header")
		}
		return nil, fmt.Errorf("reading magic line: %w", err)
	}
	version, ok := parseMagic(magic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, magic)
	}

	rec := newRecord(version)
	var req requiredFields

	lineNum := 1
	for {
		line, err := readLine(br)
		if err == io.EOF {
			if expectPayload {
				return nil, malformed(lineNum, "unexpected end of header")
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading header line: %w", err)
		}
		lineNum++

		if line == "" {
			break
		}
		if strings.HasPrefix(line, "#") {
			// Comment.
			continue
		}
		if ident, desc, ok := strings.Cut(line, ": "); ok {
			f := Field{
				Identifier: strings.ToLower(ident),
				Descriptor: strings.TrimRightFunc(desc, unicode.IsSpace),
			}
			if err := req.consume(f, lineNum); err != nil {
				return nil, err
			}
			if !rec.addField(f) {
				return nil, &DuplicateFieldError{Identifier: f.Identifier, Line: lineNum}
			}
			continue
		}
		// Key/value syntax is only attempted at Nrrd2 and newer; below
		// that, any non-field line is malformed.
		if version >= Nrrd2 {
			if key, value, ok := strings.Cut(line, ":="); ok && key != "" {
				rec.setKeyValue(KeyValue{Key: key, Value: value})
				continue
			}
		}
		return nil, malformed(lineNum, "unexpected line %q", line)
	}

	if err := req.validate(); err != nil {
		return nil, err
	}
	rec.dimension = req.dimension
	rec.sizes = req.sizes
	rec.pixelType = req.pixelType
	rec.encoding = req.encoding
	rec.endian = req.endian
	return rec, nil
}

// readLine reads one line, stripping the terminator. A final line without
// a terminator is returned as-is; the next call reports io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// requiredFields accumulates the structural fields as they are seen and
// validates their cross-field constraints once the header body is done.
type requiredFields struct {
	dimension    int
	hasDimension bool
	sizes        []int
	pixelType    PixelType
	hasType      bool
	encoding     Encoding
	hasEncoding  bool
	blockSize    int
	hasBlockSize bool
	endian       Endian
	hasEndian    bool
}

func (rf *requiredFields) consume(f Field, line int) error {
	switch f.Identifier {
	case "dimension":
		d, err := strconv.Atoi(f.Descriptor)
		if err != nil || d <= 0 {
			return malformed(line, "invalid dimension value %q", f.Descriptor)
		}
		rf.dimension, rf.hasDimension = d, true
	case "sizes":
		if !rf.hasDimension {
			return malformed(line, "per-axis specification before dimension")
		}
		parts := strings.Fields(f.Descriptor)
		sizes := make([]int, 0, len(parts))
		for _, p := range parts {
			s, err := strconv.Atoi(p)
			if err != nil {
				return malformed(line, "invalid sizes value %q", p)
			}
			sizes = append(sizes, s)
		}
		if len(sizes) != rf.dimension {
			return malformed(line, "mismatched dimension and sizes: dimension %d, %d sizes",
				rf.dimension, len(sizes))
		}
		rf.sizes = sizes
	case "type":
		t, ok := ParsePixelType(f.Descriptor)
		if !ok {
			return malformed(line, "invalid type value %q", f.Descriptor)
		}
		rf.pixelType, rf.hasType = t, true
	case "encoding":
		rf.encoding, rf.hasEncoding = ParseEncoding(f.Descriptor), true
	case "block size", "blocksize":
		b, err := strconv.Atoi(f.Descriptor)
		if err != nil {
			return malformed(line, "invalid block size value %q", f.Descriptor)
		}
		rf.blockSize, rf.hasBlockSize = b, true
	case "endian":
		e, ok := ParseEndian(f.Descriptor)
		if !ok {
			return malformed(line, "invalid endian value %q", f.Descriptor)
		}
		rf.endian, rf.hasEndian = e, true
	}
	return nil
}

// validate applies the cross-field rules in dependency order: dimension,
// sizes, type (with its block-size or endian requirement), encoding.
// A 1-byte scalar type may omit endian; it defaults to little.
func (rf *requiredFields) validate() error {
	if !rf.hasDimension {
		return malformed(0, "missing dimension field")
	}
	if rf.sizes == nil {
		return malformed(0, "missing sizes field")
	}
	if !rf.hasType {
		return malformed(0, "missing type field")
	}
	if rf.pixelType.Kind == KindBlock {
		switch {
		case !rf.hasBlockSize:
			return malformed(0, "missing block size field")
		case rf.blockSize <= 0:
			return malformed(0, "invalid block size value %d", rf.blockSize)
		}
		rf.pixelType.BlockSize = rf.blockSize
	} else if rf.pixelType.Size() != 1 && !rf.hasEndian {
		return malformed(0, "missing endian field")
	}
	if !rf.hasEncoding {
		return malformed(0, "missing encoding field")
	}
	return nil
}
