package nrrd

import "testing"

func TestParsePixelTypeAliases(t *testing.T) {
	tests := []struct {
		in   string
		want PixelType
	}{
		{"signed char", Int8},
		{"int8", Int8},
		{"int8_t", Int8},
		{"uchar", UInt8},
		{"unsigned char", UInt8},
		{"uint8_t", UInt8},
		{"short", Int16},
		{"signed short int", Int16},
		{"int16_t", Int16},
		{"ushort", UInt16},
		{"unsigned short int", UInt16},
		{"int", Int32},
		{"signed int", Int32},
		{"int32", Int32},
		{"int32_t", Int32},
		{"uint", UInt32},
		{"unsigned int", UInt32},
		{"longlong", Int64},
		{"signed long long int", Int64},
		{"int64_t", Int64},
		{"ulonglong", UInt64},
		{"unsigned long long int", UInt64},
		{"float", Float32},
		{"double", Float64},
		{"block", PixelType{Kind: KindBlock}},
	}
	for _, tt := range tests {
		got, ok := ParsePixelType(tt.in)
		if !ok {
			t.Errorf("ParsePixelType(%q): not recognized", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePixelType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePixelTypeUnknown(t *testing.T) {
	for _, in := range []string{"", "quaternion", "Float", "FLOAT", "int 32"} {
		if _, ok := ParsePixelType(in); ok {
			t.Errorf("ParsePixelType(%q): unexpectedly recognized", in)
		}
	}
}

func TestPixelTypeSize(t *testing.T) {
	tests := []struct {
		pt   PixelType
		want int
	}{
		{Int8, 1},
		{UInt8, 1},
		{Int16, 2},
		{UInt16, 2},
		{Int32, 4},
		{UInt32, 4},
		{Float32, 4},
		{Int64, 8},
		{UInt64, 8},
		{Float64, 8},
		{BlockType(42), 42},
	}
	for _, tt := range tests {
		if got := tt.pt.Size(); got != tt.want {
			t.Errorf("%v.Size() = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestPixelTypeString(t *testing.T) {
	tests := []struct {
		pt   PixelType
		want string
	}{
		{Int8, "int8"},
		{UInt8, "uint8"},
		{Int16, "int16"},
		{UInt16, "uint16"},
		{Int32, "int32"},
		{UInt32, "uint32"},
		{Int64, "int64"},
		{UInt64, "uint64"},
		{Float32, "float"},
		{Float64, "double"},
		{BlockType(8), "block"},
	}
	for _, tt := range tests {
		if got := tt.pt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		// The canonical name must survive its own alias table, so a
		// written header reads back to the same type.
		if tt.pt.Kind == KindBlock {
			continue
		}
		back, ok := ParsePixelType(tt.want)
		if !ok || back != tt.pt {
			t.Errorf("ParsePixelType(%q) = %v, %v; want %v", tt.want, back, ok, tt.pt)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want Encoding
	}{
		{"raw", Encoding{Kind: EncodingRaw}},
		{"ascii", Encoding{Kind: EncodingASCII}},
		{"text", Encoding{Kind: EncodingASCII}},
		{"txt", Encoding{Kind: EncodingASCII}},
		{"gzip", Encoding{Kind: EncodingGZip}},
		{"gz", Encoding{Kind: EncodingGZip}},
		{"bzip2", Encoding{Kind: EncodingBZip2}},
		{"bz2", Encoding{Kind: EncodingBZip2}},
		{"hex", Encoding{Kind: EncodingOther, Token: "hex"}},
	}
	for _, tt := range tests {
		if got := ParseEncoding(tt.in); got != tt.want {
			t.Errorf("ParseEncoding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseEndian(t *testing.T) {
	if e, ok := ParseEndian("little"); !ok || e != LittleEndian {
		t.Errorf("little: got %v, %v", e, ok)
	}
	if e, ok := ParseEndian("big"); !ok || e != BigEndian {
		t.Errorf("big: got %v, %v", e, ok)
	}
	for _, in := range []string{"", "Little", "BIG", "middle"} {
		if _, ok := ParseEndian(in); ok {
			t.Errorf("ParseEndian(%q): unexpectedly recognized", in)
		}
	}
}

func TestVersionMagic(t *testing.T) {
	magics := map[Version]string{
		Nrrd1: "NRRD0001",
		Nrrd2: "NRRD0002",
		Nrrd3: "NRRD0003",
		Nrrd4: "NRRD0004",
		Nrrd5: "NRRD0005",
	}
	for v, want := range magics {
		if got := v.Magic(); got != want {
			t.Errorf("%d.Magic() = %q, want %q", v, got, want)
		}
		back, ok := parseMagic(want)
		if !ok || back != v {
			t.Errorf("parseMagic(%q) = %v, %v; want %v", want, back, ok, v)
		}
	}
	if _, ok := parseMagic("NRRD0006"); ok {
		t.Error("parseMagic accepted NRRD0006")
	}
	if _, ok := parseMagic("NRRD0005 "); ok {
		t.Error("parseMagic accepted trailing space")
	}
}
