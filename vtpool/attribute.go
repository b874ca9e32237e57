package vtpool

import "fmt"

// ValueKind identifies the wire-representable kind of an attribute value.
type ValueKind uint8

// Attribute value kinds.
const (
	KindUint8 ValueKind = iota
	KindUint16
	KindUint32
	KindBool
	KindObjectID
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindBool:
		return "bool"
	case KindObjectID:
		return "object ID"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// AttributeValue is a tagged value of one of the closed set of kinds the
// object pool format uses. The zero value is a uint8 zero.
type AttributeValue struct {
	kind ValueKind
	num  uint32
}

// Uint8Value returns an AttributeValue holding an unsigned 8-bit integer.
func Uint8Value(v uint8) AttributeValue {
	return AttributeValue{kind: KindUint8, num: uint32(v)}
}

// Uint16Value returns an AttributeValue holding an unsigned 16-bit integer.
func Uint16Value(v uint16) AttributeValue {
	return AttributeValue{kind: KindUint16, num: uint32(v)}
}

// Uint32Value returns an AttributeValue holding an unsigned 32-bit integer.
func Uint32Value(v uint32) AttributeValue {
	return AttributeValue{kind: KindUint32, num: v}
}

// BoolValue returns an AttributeValue holding a boolean.
func BoolValue(v bool) AttributeValue {
	var n uint32
	if v {
		n = 1
	}
	return AttributeValue{kind: KindBool, num: n}
}

// ObjectIDValue returns an AttributeValue holding an object ID reference.
func ObjectIDValue(id ObjectID) AttributeValue {
	return AttributeValue{kind: KindObjectID, num: uint32(id)}
}

// Kind returns the value's kind.
func (v AttributeValue) Kind() ValueKind {
	return v.kind
}

// Uint8 returns the value as a uint8. Valid only when Kind is KindUint8.
func (v AttributeValue) Uint8() uint8 {
	return uint8(v.num)
}

// Uint16 returns the value as a uint16. Valid only when Kind is KindUint16.
func (v AttributeValue) Uint16() uint16 {
	return uint16(v.num)
}

// Uint32 returns the value as a uint32. Valid only when Kind is KindUint32.
func (v AttributeValue) Uint32() uint32 {
	return v.num
}

// Bool returns the value as a bool. Valid only when Kind is KindBool.
func (v AttributeValue) Bool() bool {
	return v.num != 0
}

// ObjectID returns the value as an ObjectID. Valid only when Kind is
// KindObjectID.
func (v AttributeValue) ObjectID() ObjectID {
	return ObjectID(v.num)
}

// String renders the value for diagnostics.
func (v AttributeValue) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%s(%t)", v.kind, v.Bool())
	case KindObjectID:
		return fmt.Sprintf("%s(0x%04X)", v.kind, v.ObjectID())
	default:
		return fmt.Sprintf("%s(%d)", v.kind, v.num)
	}
}

// asUint8 returns the value as a uint8 if it holds one.
func (v AttributeValue) asUint8() (uint8, bool) {
	return uint8(v.num), v.kind == KindUint8
}

// asUint16 returns the value as a uint16 if it holds one.
func (v AttributeValue) asUint16() (uint16, bool) {
	return uint16(v.num), v.kind == KindUint16
}

// asBool returns the value as a bool if it holds one.
func (v AttributeValue) asBool() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

// asObjectID returns the value as an object ID reference. Both KindObjectID
// and KindUint16 are accepted: object references travel on the wire as plain
// 16-bit integers and callers decoding commands may present either.
func (v AttributeValue) asObjectID() (ObjectID, bool) {
	return ObjectID(v.num), v.kind == KindObjectID || v.kind == KindUint16
}

// Attribute pairs an attribute ID with its current value. Attribute IDs are
// local to an object type; ID 0 is by convention the read-only object type.
type Attribute struct {
	ID    uint8
	Value AttributeValue
}

// AttrObjectType is the attribute ID every object type reserves for its
// object type byte. It is always read-only.
const AttrObjectType uint8 = 0

// typeAttribute builds the read-only type attribute for an object type.
func typeAttribute(t ObjectType) Attribute {
	return Attribute{ID: AttrObjectType, Value: Uint8Value(uint8(t))}
}
