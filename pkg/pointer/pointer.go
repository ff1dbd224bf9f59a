package pointer

import "time"

// String returns a pointer to the provided string value
func String(value string) *string {
	return &value
}

// StringOrDefault returns the pointer if not nil, otherwise the default value
func StringOrDefault(value *string, defaultValue string) *string {
	if value != nil {
		return value
	}
	return &defaultValue
}

// StringIfValid returns a pointer to the value if it's valid, otherwise nil
func StringIfValid(valid bool, value string) *string {
	if valid {
		return &value
	}
	return nil
}

// StringCopy returns a pointer that's a copy of the provided value
func StringCopy(value *string) *string {
	if value == nil {
		return nil
	}

	return String(*value)
}

// Bool returns a pointer to the provided bool value
func Bool(value bool) *bool {
	return &value
}

// BoolOrDefault returns the pointer if not nil, otherwise the default value
func BoolOrDefault(value *bool, defaultValue bool) *bool {
	if value != nil {
		return value
	}
	return &defaultValue
}

// BoolCopy returns a pointer that's a copy of the provided value
func BoolCopy(value *bool) *bool {
	if value == nil {
		return nil
	}

	return Bool(*value)
}

// Uint8 returns a pointer to the provided uint8 value
func Uint8(value uint8) *uint8 {
	return &value
}

// Uint8OrDefault returns the pointer if not nil, otherwise the default value
func Uint8OrDefault(value *uint8, defaultValue uint8) *uint8 {
	if value != nil {
		return value
	}
	return &defaultValue
}

// Uint8Copy returns a pointer that's a copy of the provided value
func Uint8Copy(value *uint8) *uint8 {
	if value == nil {
		return nil
	}

	return Uint8(*value)
}

// Uint16 returns a pointer to the provided uint16 value
func Uint16(value uint16) *uint16 {
	return &value
}

// Uint16OrDefault returns the pointer if not nil, otherwise the default value
func Uint16OrDefault(value *uint16, defaultValue uint16) *uint16 {
	if value != nil {
		return value
	}
	return &defaultValue
}

// Uint16Copy returns a pointer that's a copy of the provided value
func Uint16Copy(value *uint16) *uint16 {
	if value == nil {
		return nil
	}

	return Uint16(*value)
}

// Uint32 returns a pointer to the provided uint32 value
func Uint32(value uint32) *uint32 {
	return &value
}

// Uint32OrDefault returns the pointer if not nil, otherwise the default value
func Uint32OrDefault(value *uint32, defaultValue uint32) *uint32 {
	if value != nil {
		return value
	}
	return &defaultValue
}

// Uint32Copy returns a pointer that's a copy of the provided value
func Uint32Copy(value *uint32) *uint32 {
	if value == nil {
		return nil
	}

	return Uint32(*value)
}

// Uint64 returns a pointer to the provided uint64 value
func Uint64(value uint64) *uint64 {
	return &value
}

// Uint64OrDefault returns the pointer if not nil, otherwise the default value
func Uint64OrDefault(value *uint64, defaultValue uint64) *uint64 {
	if value != nil {
		return value
	}
	return &defaultValue
}

// Uint64Copy returns a pointer that's a copy of the provided value
func Uint64Copy(value *uint64) *uint64 {
	if value == nil {
		return nil
	}

	return Uint64(*value)
}

// Int64 returns a pointer to the provided int64 value
func Int64(value int64) *int64 {
	return &value
}

// Int64OrDefault returns the pointer if not nil, otherwise the default value
func Int64OrDefault(value *int64, defaultValue int64) *int64 {
	if value != nil {
		return value
	}
	return &defaultValue
}

// Int64Copy returns a pointer that's a copy of the provided value
func Int64Copy(value *int64) *int64 {
	if value == nil {
		return nil
	}

	return Int64(*value)
}

// Time returns a pointer to the provided time value
func Time(value time.Time) *time.Time {
	return &value
}

// TimeOrDefault returns the pointer if not nil, otherwise the default value
func TimeOrDefault(value *time.Time, defaultValue time.Time) *time.Time {
	if value != nil {
		return value
	}
	return &defaultValue
}

// TimeCopy returns a pointer that's a copy of the provided value
func TimeCopy(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}

	return Time(*value)
}
