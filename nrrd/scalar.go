package nrrd

import (
	"encoding/binary"
	"math"
)

// Scalar is the set of Go types that can back an Image. Each corresponds
// to exactly one scalar PixelType.
type Scalar interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | float32 | float64
}

// byteOrder maps an Endian to the encoding/binary order used for all
// multi-byte pixel access.
func (e Endian) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PixelTypeOf returns the canonical PixelType tag for T.
func PixelTypeOf[T Scalar]() PixelType {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case uint8:
		return UInt8
	case int16:
		return Int16
	case uint16:
		return UInt16
	case int32:
		return Int32
	case uint32:
		return UInt32
	case int64:
		return Int64
	case uint64:
		return UInt64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		// Unreachable: the Scalar constraint is closed.
		return PixelType{}
	}
}

// DecodeScalar reads one value of T from the front of buf, respecting the
// given byte order. The caller guarantees buf holds at least
// PixelTypeOf[T]().Size() bytes. Floating-point values are reassembled as
// raw bit patterns, so NaN payloads survive a round trip.
func DecodeScalar[T Scalar](buf []byte, endian Endian) T {
	order := endian.byteOrder()
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(buf[0])
	case *uint8:
		*p = buf[0]
	case *int16:
		*p = int16(order.Uint16(buf))
	case *uint16:
		*p = order.Uint16(buf)
	case *int32:
		*p = int32(order.Uint32(buf))
	case *uint32:
		*p = order.Uint32(buf)
	case *int64:
		*p = int64(order.Uint64(buf))
	case *uint64:
		*p = order.Uint64(buf)
	case *float32:
		*p = math.Float32frombits(order.Uint32(buf))
	case *float64:
		*p = math.Float64frombits(order.Uint64(buf))
	}
	return v
}

// EncodeScalar writes v into the front of buf with the given byte order,
// the exact inverse of DecodeScalar. The caller guarantees buf holds at
// least PixelTypeOf[T]().Size() bytes.
func EncodeScalar[T Scalar](v T, buf []byte, endian Endian) {
	order := endian.byteOrder()
	switch x := any(v).(type) {
	case int8:
		buf[0] = byte(x)
	case uint8:
		buf[0] = x
	case int16:
		order.PutUint16(buf, uint16(x))
	case uint16:
		order.PutUint16(buf, x)
	case int32:
		order.PutUint32(buf, uint32(x))
	case uint32:
		order.PutUint32(buf, x)
	case int64:
		order.PutUint64(buf, uint64(x))
	case uint64:
		order.PutUint64(buf, x)
	case float32:
		order.PutUint32(buf, math.Float32bits(x))
	case float64:
		order.PutUint64(buf, math.Float64bits(x))
	}
}
