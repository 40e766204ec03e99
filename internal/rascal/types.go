package rascal

import (
	"fmt"
	"strings"
)

// Type is the static type attached to typed nodes. Nodes whose type has not
// been inferred yet carry TypeUnknown, never nil.
type Type interface {
	String() string
	isType()
}

// PrimitiveType enumerates the built-in types plus the Unknown placeholder.
type PrimitiveType uint8

const (
	TypeUnknown PrimitiveType = iota
	TypeInt32
	TypeInt64
	TypeUInt32
	TypeUInt64
	TypeFloat32
	TypeFloat64
	TypeBool
	TypeString
	TypeNil
)

func (PrimitiveType) isType() {}

func (t PrimitiveType) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUInt32:
		return "uint32"
	case TypeUInt64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeNil:
		return "Nil"
	case TypeUnknown:
		return "unknown"
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(t))
}

// FunctionType is the type of a named function or a lambda.
type FunctionType struct {
	Params []Type
	Return Type
}

func NewFunctionType(params []Type, ret Type) *FunctionType {
	return &FunctionType{params, ret}
}

func (*FunctionType) isType() {}

func (t *FunctionType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("fun(%s) -> %s", strings.Join(params, ", "), t.Return)
}

// IsUnknown reports whether t still needs inference.
func IsUnknown(t Type) bool {
	p, ok := t.(PrimitiveType)
	return ok && p == TypeUnknown
}
