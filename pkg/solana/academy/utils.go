package academy

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += 8
}
func getDiscriminator(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, 8)
	copy(*dst, src[*offset:])
	*offset += 8
}

func putKey(dst []byte, v ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], v)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putOptionalKey(dst []byte, v ed25519.PublicKey, offset *int) {
	if v != nil {
		dst[*offset] = 1
		*offset += 1
		putKey(dst, v, offset)
	} else {
		dst[*offset] = 0
		*offset += 1
	}
}
func getOptionalKey(src []byte, dst *ed25519.PublicKey, offset *int) bool {
	if *offset >= len(src) {
		return false
	}
	if src[*offset] == 1 {
		*offset += 1
		if *offset+ed25519.PublicKeySize > len(src) {
			return false
		}
		getKey(src, dst, offset)
	} else {
		*dst = nil
		*offset += 1
	}
	return true
}

func putBool(dst []byte, v bool, offset *int) {
	if v {
		dst[*offset] = 1
	} else {
		dst[*offset] = 0
	}
	*offset += 1
}
func getBool(src []byte, dst *bool, offset *int) {
	*dst = src[*offset] == 1
	*offset += 1
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}
func getUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func putUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}
func getUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}
func getUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], uint64(v))
	*offset += 8
}
func getInt64(src []byte, dst *int64, offset *int) {
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
}

func putOptionalInt64(dst []byte, v *int64, offset *int) {
	if v != nil {
		dst[*offset] = 1
		*offset += 1
		putInt64(dst, *v, offset)
	} else {
		dst[*offset] = 0
		*offset += 1
	}
}
func getOptionalInt64(src []byte, dst **int64, offset *int) bool {
	if *offset >= len(src) {
		return false
	}
	if src[*offset] == 1 {
		*offset += 1
		if *offset+8 > len(src) {
			return false
		}
		var v int64
		getInt64(src, &v, offset)
		*dst = &v
	} else {
		*dst = nil
		*offset += 1
	}
	return true
}

func putOptionalBool(dst []byte, v *bool, offset *int) {
	if v != nil {
		dst[*offset] = 1
		*offset += 1
		putBool(dst, *v, offset)
	} else {
		dst[*offset] = 0
		*offset += 1
	}
}
func getOptionalBool(src []byte, dst **bool, offset *int) bool {
	if *offset >= len(src) {
		return false
	}
	if src[*offset] == 1 {
		*offset += 1
		if *offset+1 > len(src) {
			return false
		}
		var v bool
		getBool(src, &v, offset)
		*dst = &v
	} else {
		*dst = nil
		*offset += 1
	}
	return true
}

func putOptionalUint16(dst []byte, v *uint16, offset *int) {
	if v != nil {
		dst[*offset] = 1
		*offset += 1
		putUint16(dst, *v, offset)
	} else {
		dst[*offset] = 0
		*offset += 1
	}
}
func getOptionalUint16(src []byte, dst **uint16, offset *int) bool {
	if *offset >= len(src) {
		return false
	}
	if src[*offset] == 1 {
		*offset += 1
		if *offset+2 > len(src) {
			return false
		}
		var v uint16
		getUint16(src, &v, offset)
		*dst = &v
	} else {
		*dst = nil
		*offset += 1
	}
	return true
}

func putOptionalUint32(dst []byte, v *uint32, offset *int) {
	if v != nil {
		dst[*offset] = 1
		*offset += 1
		putUint32(dst, *v, offset)
	} else {
		dst[*offset] = 0
		*offset += 1
	}
}
func getOptionalUint32(src []byte, dst **uint32, offset *int) bool {
	if *offset >= len(src) {
		return false
	}
	if src[*offset] == 1 {
		*offset += 1
		if *offset+4 > len(src) {
			return false
		}
		var v uint32
		getUint32(src, &v, offset)
		*dst = &v
	} else {
		*dst = nil
		*offset += 1
	}
	return true
}

func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}

// getString reads a length-prefixed string, rejecting anything longer
// than maxLength or extending past the buffer.
func getString(src []byte, dst *string, maxLength int, offset *int) bool {
	if *offset+4 > len(src) {
		return false
	}
	var length uint32
	getUint32(src, &length, offset)
	if int(length) > maxLength || *offset+int(length) > len(src) {
		return false
	}
	*dst = string(src[*offset : *offset+int(length)])
	*offset += int(length)
	return true
}

func putData(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:], src)
	*offset += len(src)
}
func getData(src []byte, dst []byte, length int, offset *int) {
	copy(dst[:length], src[*offset:*offset+length])
	*offset += length
}

func putUint64Array(dst []byte, v [4]uint64, offset *int) {
	for _, word := range v {
		putUint64(dst, word, offset)
	}
}
func getUint64Array(src []byte, dst *[4]uint64, offset *int) {
	for i := range dst {
		getUint64(src, &dst[i], offset)
	}
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
