package nrrd

import (
	"math"
	"testing"
)

func roundTrip[T Scalar](t *testing.T, values []T) {
	t.Helper()
	width := PixelTypeOf[T]().Size()
	for _, endian := range []Endian{LittleEndian, BigEndian} {
		for _, v := range values {
			buf := make([]byte, width)
			EncodeScalar(v, buf, endian)
			got := DecodeScalar[T](buf, endian)
			if got != v {
				t.Errorf("%s round trip of %v: got %v", endian, v, got)
			}
		}
	}
}

func TestScalarRoundTrip(t *testing.T) {
	roundTrip(t, []int8{0, 1, -1, math.MinInt8, math.MaxInt8})
	roundTrip(t, []uint8{0, 1, 0x80, math.MaxUint8})
	roundTrip(t, []int16{0, 1, -1, math.MinInt16, math.MaxInt16})
	roundTrip(t, []uint16{0, 1, 0x8000, math.MaxUint16})
	roundTrip(t, []int32{0, 1, -1, math.MinInt32, math.MaxInt32})
	roundTrip(t, []uint32{0, 1, 0x80000000, math.MaxUint32})
	roundTrip(t, []int64{0, 1, -1, math.MinInt64, math.MaxInt64})
	roundTrip(t, []uint64{0, 1, 1 << 63, math.MaxUint64})
	roundTrip(t, []float32{0, 1.5, -2.25, math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1))})
	roundTrip(t, []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1)})
}

func TestFloat32NaNPayloadPreserved(t *testing.T) {
	// A quiet NaN with a non-standard payload: the codec reinterprets
	// bytes, it never normalizes values.
	bits := uint32(0x7fc00abc)
	v := math.Float32frombits(bits)
	for _, endian := range []Endian{LittleEndian, BigEndian} {
		buf := make([]byte, 4)
		EncodeScalar(v, buf, endian)
		got := DecodeScalar[float32](buf, endian)
		if math.Float32bits(got) != bits {
			t.Errorf("%s: NaN bits %#x round tripped to %#x", endian, bits, math.Float32bits(got))
		}
	}
}

func TestFloat64NaNPayloadPreserved(t *testing.T) {
	bits := uint64(0x7ff80000deadbeef)
	v := math.Float64frombits(bits)
	for _, endian := range []Endian{LittleEndian, BigEndian} {
		buf := make([]byte, 8)
		EncodeScalar(v, buf, endian)
		got := DecodeScalar[float64](buf, endian)
		if math.Float64bits(got) != bits {
			t.Errorf("%s: NaN bits %#x round tripped to %#x", endian, bits, math.Float64bits(got))
		}
	}
}

func TestEncodeScalarByteOrder(t *testing.T) {
	buf := make([]byte, 2)

	EncodeScalar(uint16(0x0102), buf, BigEndian)
	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("big-endian uint16: got % x", buf)
	}

	EncodeScalar(uint16(0x0102), buf, LittleEndian)
	if buf[0] != 0x02 || buf[1] != 0x01 {
		t.Errorf("little-endian uint16: got % x", buf)
	}
}

func TestPixelTypeOf(t *testing.T) {
	if got := PixelTypeOf[int8](); got != Int8 {
		t.Errorf("int8: got %v", got)
	}
	if got := PixelTypeOf[uint8](); got != UInt8 {
		t.Errorf("uint8: got %v", got)
	}
	if got := PixelTypeOf[int16](); got != Int16 {
		t.Errorf("int16: got %v", got)
	}
	if got := PixelTypeOf[uint16](); got != UInt16 {
		t.Errorf("uint16: got %v", got)
	}
	if got := PixelTypeOf[int32](); got != Int32 {
		t.Errorf("int32: got %v", got)
	}
	if got := PixelTypeOf[uint32](); got != UInt32 {
		t.Errorf("uint32: got %v", got)
	}
	if got := PixelTypeOf[int64](); got != Int64 {
		t.Errorf("int64: got %v", got)
	}
	if got := PixelTypeOf[uint64](); got != UInt64 {
		t.Errorf("uint64: got %v", got)
	}
	if got := PixelTypeOf[float32](); got != Float32 {
		t.Errorf("float32: got %v", got)
	}
	if got := PixelTypeOf[float64](); got != Float64 {
		t.Errorf("float64: got %v", got)
	}
}
