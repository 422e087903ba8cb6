package nrrd

// PixelKind enumerates the scalar layouts a pixel can have.
type PixelKind int

const (
	KindInt8 PixelKind = iota + 1
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat32
	KindFloat64
	KindBlock
)

// PixelType identifies the on-disk layout of a single pixel: one of the
// fixed-width scalar kinds, or an opaque block of a declared byte size.
// PixelType values are comparable; two types are equal when their kind
// and, for blocks, their size match.
type PixelType struct {
	Kind      PixelKind
	BlockSize int // set only for KindBlock; always positive after validation
}

// The scalar pixel types.
var (
	Int8    = PixelType{Kind: KindInt8}
	UInt8   = PixelType{Kind: KindUInt8}
	Int16   = PixelType{Kind: KindInt16}
	UInt16  = PixelType{Kind: KindUInt16}
	Int32   = PixelType{Kind: KindInt32}
	UInt32  = PixelType{Kind: KindUInt32}
	Int64   = PixelType{Kind: KindInt64}
	UInt64  = PixelType{Kind: KindUInt64}
	Float32 = PixelType{Kind: KindFloat32}
	Float64 = PixelType{Kind: KindFloat64}
)

// BlockType returns the opaque pixel type with the given byte size.
func BlockType(size int) PixelType {
	return PixelType{Kind: KindBlock, BlockSize: size}
}

// Size returns the on-disk width of one pixel in bytes. This is the single
// width table in the package; every other component derives widths from it.
func (t PixelType) Size() int {
	switch t.Kind {
	case KindInt8, KindUInt8:
		return 1
	case KindInt16, KindUInt16:
		return 2
	case KindInt32, KindUInt32, KindFloat32:
		return 4
	case KindInt64, KindUInt64, KindFloat64:
		return 8
	case KindBlock:
		return t.BlockSize
	default:
		return 0
	}
}

// String returns the canonical header token for the type.
func (t PixelType) String() string {
	switch t.Kind {
	case KindInt8:
		return "int8"
	case KindUInt8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUInt16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUInt32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUInt64:
		return "uint64"
	case KindFloat32:
		return "float"
	case KindFloat64:
		return "double"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ParsePixelType maps a "type" field descriptor to a PixelType. The alias
// table is many-to-one: every C-style spelling of a scalar denotes the same
// variant. A "block" descriptor yields a block type with a zero size; the
// size is filled in from the separate "block size" field during validation.
func ParsePixelType(s string) (PixelType, bool) {
	switch s {
	case "signed char", "int8", "int8_t":
		return Int8, true
	case "uchar", "unsigned char", "uint8", "uint8_t":
		return UInt8, true
	case "short", "short int", "signed short", "signed short int", "int16", "int16_t":
		return Int16, true
	case "ushort", "unsigned short", "unsigned short int", "uint16", "uint16_t":
		return UInt16, true
	case "int", "signed int", "int32", "int32_t":
		return Int32, true
	case "uint", "unsigned int", "uint32", "uint32_t":
		return UInt32, true
	case "longlong", "long long", "long long int", "signed long long",
		"signed long long int", "int64", "int64_t":
		return Int64, true
	case "ulonglong", "unsigned long long", "unsigned long long int",
		"uint64", "uint64_t":
		return UInt64, true
	case "float":
		return Float32, true
	case "double":
		return Float64, true
	case "block":
		return PixelType{Kind: KindBlock}, true
	default:
		return PixelType{}, false
	}
}
