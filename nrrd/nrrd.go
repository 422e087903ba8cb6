package nrrd

// Version identifies an NRRD format revision. Versions are ordered: a
// revision gates which header constructs are legal (key/value metadata
// lines require Nrrd2 or newer).
type Version int

// Supported format revisions.
const (
	Nrrd1 Version = iota + 1
	Nrrd2
	Nrrd3
	Nrrd4
	Nrrd5
)

// Magic returns the magic line that introduces a header of this version.
func (v Version) Magic() string {
	switch v {
	case Nrrd1:
		return "NRRD0001"
	case Nrrd2:
		return "NRRD0002"
	case Nrrd3:
		return "NRRD0003"
	case Nrrd4:
		return "NRRD0004"
	case Nrrd5:
		return "NRRD0005"
	default:
		return "NRRD????"
	}
}

func (v Version) String() string {
	return v.Magic()
}

// parseMagic matches a magic line against the known revisions. The line
// must match exactly; no trimming beyond line-terminator stripping has
// been applied by the caller.
func parseMagic(line string) (Version, bool) {
	for v := Nrrd1; v <= Nrrd5; v++ {
		if line == v.Magic() {
			return v, true
		}
	}
	return 0, false
}

// Field is a structured header entry of the form "<identifier>: <descriptor>".
// Identifiers are stored in their canonical lower-case form and descriptors
// have trailing whitespace trimmed. Field identity is by identifier only.
type Field struct {
	Identifier string
	Descriptor string
}

// KeyValue is a free-form metadata entry of the form "<key>:=<value>".
// Permitted only at Nrrd2 and newer. Identity is by key only.
type KeyValue struct {
	Key   string
	Value string
}

// EncodingKind enumerates the payload encodings the format can declare.
type EncodingKind int

const (
	EncodingRaw EncodingKind = iota
	EncodingASCII
	EncodingGZip
	EncodingBZip2
	EncodingOther
)

// Encoding records how the payload is declared to be stored. Only raw
// payloads can be decoded into a typed image; every other kind is
// recognized at parse time but rejected at the conversion boundary.
type Encoding struct {
	Kind  EncodingKind
	Token string // original header token, set only for EncodingOther
}

// ParseEncoding maps a header token to an Encoding. Unrecognized tokens
// are never an error; they produce an EncodingOther carrying the token.
func ParseEncoding(s string) Encoding {
	switch s {
	case "raw":
		return Encoding{Kind: EncodingRaw}
	case "ascii", "text", "txt":
		return Encoding{Kind: EncodingASCII}
	case "gzip", "gz":
		return Encoding{Kind: EncodingGZip}
	case "bzip2", "bz2":
		return Encoding{Kind: EncodingBZip2}
	default:
		return Encoding{Kind: EncodingOther, Token: s}
	}
}

func (e Encoding) String() string {
	switch e.Kind {
	case EncodingRaw:
		return "raw"
	case EncodingASCII:
		return "ascii"
	case EncodingGZip:
		return "gzip"
	case EncodingBZip2:
		return "bzip2"
	default:
		return e.Token
	}
}

// Endian is the byte order of multi-byte pixel values in the payload.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

// ParseEndian maps the "endian" field descriptor to an Endian.
func ParseEndian(s string) (Endian, bool) {
	switch s {
	case "little":
		return LittleEndian, true
	case "big":
		return BigEndian, true
	default:
		return 0, false
	}
}

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// Nrrd is a parsed on-disk record: the validated header plus the raw
// trailing payload. Fields and key/values are kept in insertion order so
// that writing a record back out is deterministic.
type Nrrd struct {
	version   Version
	fields    []Field
	fieldIdx  map[string]int
	keyValues []KeyValue
	kvIdx     map[string]int

	dimension int
	sizes     []int
	pixelType PixelType
	encoding  Encoding
	endian    Endian

	buffer []byte
}

func newRecord(version Version) *Nrrd {
	return &Nrrd{
		version:  version,
		fieldIdx: make(map[string]int),
		kvIdx:    make(map[string]int),
	}
}

// Version returns the format revision declared by the magic line.
func (n *Nrrd) Version() Version { return n.version }

// Dimension returns the number of axes.
func (n *Nrrd) Dimension() int { return n.dimension }

// Sizes returns the per-axis sizes. len(Sizes()) always equals Dimension().
func (n *Nrrd) Sizes() []int { return n.sizes }

// PixelType returns the declared pixel type.
func (n *Nrrd) PixelType() PixelType { return n.pixelType }

// Encoding returns the declared payload encoding.
func (n *Nrrd) Encoding() Encoding { return n.encoding }

// Endian returns the declared byte order, defaulting to little when the
// header legally omitted it.
func (n *Nrrd) Endian() Endian { return n.endian }

// Buffer returns the raw payload bytes.
func (n *Nrrd) Buffer() []byte { return n.buffer }

// Fields returns every header field in the order it was declared.
func (n *Nrrd) Fields() []Field { return n.fields }

// Field looks up a field by its canonical (lower-case) identifier.
func (n *Nrrd) Field(identifier string) (Field, bool) {
	i, ok := n.fieldIdx[identifier]
	if !ok {
		return Field{}, false
	}
	return n.fields[i], true
}

// KeyValues returns every key/value entry in the order first declared.
func (n *Nrrd) KeyValues() []KeyValue { return n.keyValues }

// KeyValue looks up a metadata entry by key.
func (n *Nrrd) KeyValue(key string) (KeyValue, bool) {
	i, ok := n.kvIdx[key]
	if !ok {
		return KeyValue{}, false
	}
	return n.keyValues[i], true
}

// addField inserts a field, reporting false if the identifier was already
// present. Distinct identifiers may appear at most once per header.
func (n *Nrrd) addField(f Field) bool {
	if _, ok := n.fieldIdx[f.Identifier]; ok {
		return false
	}
	n.fieldIdx[f.Identifier] = len(n.fields)
	n.fields = append(n.fields, f)
	return true
}

// setKeyValue inserts or replaces a metadata entry. Unlike fields,
// duplicate keys are not an error: the last occurrence wins.
func (n *Nrrd) setKeyValue(kv KeyValue) {
	if i, ok := n.kvIdx[kv.Key]; ok {
		n.keyValues[i] = kv
		return
	}
	n.kvIdx[kv.Key] = len(n.keyValues)
	n.keyValues = append(n.keyValues, kv)
}

// payloadSize returns the byte count a raw payload must have for the
// declared shape and pixel type.
func (n *Nrrd) payloadSize() int {
	count := 1
	for _, s := range n.sizes {
		count *= s
	}
	return count * n.pixelType.Size()
}
