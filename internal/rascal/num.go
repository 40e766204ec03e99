package rascal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Num is a numeric literal. The variant is decided by the literal's suffix.
type Num interface {
	// Type returns the primitive type of the literal's variant.
	Type() PrimitiveType
	String() string
}

type Int32Num int32
type Int64Num int64
type UInt32Num uint32
type UInt64Num uint64
type Float32Num float32
type Float64Num float64

func (Int32Num) Type() PrimitiveType   { return TypeInt32 }
func (Int64Num) Type() PrimitiveType   { return TypeInt64 }
func (UInt32Num) Type() PrimitiveType  { return TypeUInt32 }
func (UInt64Num) Type() PrimitiveType  { return TypeUInt64 }
func (Float32Num) Type() PrimitiveType { return TypeFloat32 }
func (Float64Num) Type() PrimitiveType { return TypeFloat64 }

func (n Int32Num) String() string  { return strconv.FormatInt(int64(n), 10) }
func (n Int64Num) String() string  { return strconv.FormatInt(int64(n), 10) }
func (n UInt32Num) String() string { return strconv.FormatUint(uint64(n), 10) }
func (n UInt64Num) String() string { return strconv.FormatUint(uint64(n), 10) }

func (n Float32Num) String() string { return formatFloat(float64(n), 32) }
func (n Float64Num) String() string { return formatFloat(float64(n), 64) }

// formatFloat always keeps a decimal point so the text scans back as a
// decimal literal.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Literal suffixes, in the order the scanner tries them.
var numSuffixes = []string{"i32", "i64", "u32", "u64", "f32", "f64"}

// ParseNum converts the text of a numeric literal into its Num variant.
//
//	digits               -> Int32
//	digits i32|i64|u32|u64 -> Int32|Int64|UInt32|UInt64
//	digits.digits        -> Float64
//	digits[.digits] f32|f64 -> Float32|Float64
//
// Values that do not fit the target representation are errors, never
// truncated.
func ParseNum(text string) (Num, error) {
	digits, suffix := splitSuffix(text)
	if !isNumericText(digits) {
		return nil, errors.Errorf("malformed numeric literal %q", text)
	}
	isDecimal := strings.Contains(digits, ".")
	if isDecimal && (suffix == "i32" || suffix == "i64" || suffix == "u32" || suffix == "u64") {
		return nil, errors.Errorf("decimal literal %q cannot take integer suffix %q", text, suffix)
	}

	switch {
	case suffix == "i64":
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid int64 literal %q", text)
		}
		return Int64Num(v), nil
	case suffix == "u32":
		v, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid uint32 literal %q", text)
		}
		return UInt32Num(v), nil
	case suffix == "u64":
		v, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid uint64 literal %q", text)
		}
		return UInt64Num(v), nil
	case suffix == "f32":
		v, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid float32 literal %q", text)
		}
		return Float32Num(v), nil
	case suffix == "f64" || isDecimal:
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid float64 literal %q", text)
		}
		return Float64Num(v), nil
	default:
		v, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid int32 literal %q", text)
		}
		return Int32Num(v), nil
	}
}

func splitSuffix(text string) (string, string) {
	for _, suffix := range numSuffixes {
		if strings.HasSuffix(text, suffix) {
			return strings.TrimSuffix(text, suffix), suffix
		}
	}
	return text, ""
}

// isNumericText reports whether s is `[0-9]+(\.[0-9]+)?`.
func isNumericText(s string) bool {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" || (hasDot && fracPart == "") {
		return false
	}
	for _, r := range intPart + fracPart {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
