package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// ObjectID identifies an object within one pool. IDs travel on the wire as
// little-endian 16-bit integers.
type ObjectID uint16

// NullObjectID is the reserved "null object" sentinel. It never identifies a
// real pool member; a record declaring it is a parse error.
const NullObjectID ObjectID = 0xFFFF

// ObjectType is the one-byte type tag of an object pool record. The values
// are fixed by ISO 11783-6.
type ObjectType uint8

// Object type tags.
const (
	TypeWorkingSet                      ObjectType = 0
	TypeDataMask                        ObjectType = 1
	TypeAlarmMask                       ObjectType = 2
	TypeContainer                       ObjectType = 3
	TypeSoftKeyMask                     ObjectType = 4
	TypeKey                             ObjectType = 5
	TypeButton                          ObjectType = 6
	TypeInputBoolean                    ObjectType = 7
	TypeInputString                     ObjectType = 8
	TypeInputNumber                     ObjectType = 9
	TypeInputList                       ObjectType = 10
	TypeOutputString                    ObjectType = 11
	TypeOutputNumber                    ObjectType = 12
	TypeOutputLine                      ObjectType = 13
	TypeOutputRectangle                 ObjectType = 14
	TypeOutputEllipse                   ObjectType = 15
	TypeOutputPolygon                   ObjectType = 16
	TypeOutputMeter                     ObjectType = 17
	TypeOutputLinearBarGraph            ObjectType = 18
	TypeOutputArchedBarGraph            ObjectType = 19
	TypePictureGraphic                  ObjectType = 20
	TypeNumberVariable                  ObjectType = 21
	TypeStringVariable                  ObjectType = 22
	TypeFontAttributes                  ObjectType = 23
	TypeLineAttributes                  ObjectType = 24
	TypeFillAttributes                  ObjectType = 25
	TypeInputAttributes                 ObjectType = 26
	TypeObjectPointer                   ObjectType = 27
	TypeMacro                           ObjectType = 28
	TypeAuxiliaryFunctionType1          ObjectType = 29
	TypeAuxiliaryInputType1             ObjectType = 30
	TypeAuxiliaryFunctionType2          ObjectType = 31
	TypeAuxiliaryInputType2             ObjectType = 32
	TypeAuxiliaryControlDesignatorType2 ObjectType = 33
	TypeWindowMask                      ObjectType = 34
	TypeKeyGroup                        ObjectType = 35
	TypeGraphicsContext                 ObjectType = 36
	TypeOutputList                      ObjectType = 37
	TypeExtendedInputAttributes         ObjectType = 38
	TypeColourMap                       ObjectType = 39
	TypeObjectLabelReference            ObjectType = 40
	TypeExternalObjectDefinition        ObjectType = 41
	TypeExternalReferenceNAME           ObjectType = 42
	TypeExternalObjectPointer           ObjectType = 43
	TypeAnimation                       ObjectType = 44
	TypeManufacturerDefined1            ObjectType = 240
	TypeManufacturerDefined15           ObjectType = 254
	TypeReserved                        ObjectType = 255
)

// IsManufacturerDefined reports whether the tag is in the manufacturer
// defined range 240..254.
func (t ObjectType) IsManufacturerDefined() bool {
	return t >= TypeManufacturerDefined1 && t <= TypeManufacturerDefined15
}

var objectTypeNames = map[ObjectType]string{
	TypeWorkingSet:                      "WorkingSet",
	TypeDataMask:                        "DataMask",
	TypeAlarmMask:                       "AlarmMask",
	TypeContainer:                       "Container",
	TypeSoftKeyMask:                     "SoftKeyMask",
	TypeKey:                             "Key",
	TypeButton:                          "Button",
	TypeInputBoolean:                    "InputBoolean",
	TypeInputString:                     "InputString",
	TypeInputNumber:                     "InputNumber",
	TypeInputList:                       "InputList",
	TypeOutputString:                    "OutputString",
	TypeOutputNumber:                    "OutputNumber",
	TypeOutputLine:                      "OutputLine",
	TypeOutputRectangle:                 "OutputRectangle",
	TypeOutputEllipse:                   "OutputEllipse",
	TypeOutputPolygon:                   "OutputPolygon",
	TypeOutputMeter:                     "OutputMeter",
	TypeOutputLinearBarGraph:            "OutputLinearBarGraph",
	TypeOutputArchedBarGraph:            "OutputArchedBarGraph",
	TypePictureGraphic:                  "PictureGraphic",
	TypeNumberVariable:                  "NumberVariable",
	TypeStringVariable:                  "StringVariable",
	TypeFontAttributes:                  "FontAttributes",
	TypeLineAttributes:                  "LineAttributes",
	TypeFillAttributes:                  "FillAttributes",
	TypeInputAttributes:                 "InputAttributes",
	TypeObjectPointer:                   "ObjectPointer",
	TypeMacro:                           "Macro",
	TypeAuxiliaryFunctionType1:          "AuxiliaryFunctionType1",
	TypeAuxiliaryInputType1:             "AuxiliaryInputType1",
	TypeAuxiliaryFunctionType2:          "AuxiliaryFunctionType2",
	TypeAuxiliaryInputType2:             "AuxiliaryInputType2",
	TypeAuxiliaryControlDesignatorType2: "AuxiliaryControlDesignatorType2",
	TypeWindowMask:                      "WindowMask",
	TypeKeyGroup:                        "KeyGroup",
	TypeGraphicsContext:                 "GraphicsContext",
	TypeOutputList:                      "OutputList",
	TypeExtendedInputAttributes:         "ExtendedInputAttributes",
	TypeColourMap:                       "ColourMap",
	TypeObjectLabelReference:            "ObjectLabelReference",
	TypeExternalObjectDefinition:        "ExternalObjectDefinition",
	TypeExternalReferenceNAME:           "ExternalReferenceNAME",
	TypeExternalObjectPointer:           "ExternalObjectPointer",
	TypeAnimation:                       "Animation",
	TypeReserved:                        "Reserved",
}

// String returns the tag name.
func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	if t.IsManufacturerDefined() {
		return fmt.Sprintf("ManufacturerDefined%d", uint8(t)-uint8(TypeManufacturerDefined1)+1)
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(t))
}

// UpdateCallback is invoked with an object's ID after a successful mutation
// of that object.
type UpdateCallback func(ObjectID)

// Object is one decoded element of an object pool. Objects are created only
// by Pool.Parse and mutated in place by the protocol layer; the caller
// serializes mutation calls, there is no internal locking.
type Object interface {
	// ObjectID returns the object's pool-unique ID.
	ObjectID() ObjectID

	// ObjectType returns the object's type tag.
	ObjectType() ObjectType

	// Attribute returns the current value of an attribute by its per-type ID.
	Attribute(id uint8) (Attribute, error)

	// ChangeAttribute sets an attribute by its per-type ID. On success all
	// registered update callbacks fire; on any error the object is unchanged
	// and no callback fires.
	ChangeAttribute(id uint8, value AttributeValue) error

	// RegisterUpdateCallback registers a callback invoked synchronously, in
	// registration order, after every successful mutation of this object.
	RegisterUpdateCallback(cb UpdateCallback)
}

// objectBase carries the identity, diagnostics capability and update
// callback list shared by every object variant.
type objectBase struct {
	id        ObjectID
	diag      Emitter
	callbacks []UpdateCallback
	notifying bool
}

// ObjectID returns the object's pool-unique ID.
func (b *objectBase) ObjectID() ObjectID {
	return b.id
}

// RegisterUpdateCallback registers a change observer.
func (b *objectBase) RegisterUpdateCallback(cb UpdateCallback) {
	b.callbacks = append(b.callbacks, cb)
}

// beginMutation rejects mutation attempts made from inside a notification.
func (b *objectBase) beginMutation() error {
	if b.notifying {
		emitf(b.diag, SeverityError, "rejected reentrant mutation of object 0x%04X during notification", b.id)
		return fmt.Errorf("%w: object 0x%04X", ErrReentrantMutation, b.id)
	}
	return nil
}

// notify invokes all registered callbacks in registration order.
func (b *objectBase) notify() {
	b.notifying = true
	defer func() { b.notifying = false }()
	for _, cb := range b.callbacks {
		cb(b.id)
	}
}

// emitf emits a diagnostic through the object's emitter.
func (b *objectBase) emitf(sev Severity, format string, args ...interface{}) {
	emitf(b.diag, sev, format, args...)
}

// ChildRef is one entry of a position-bearing child list: a referenced
// object ID and its position relative to the parent. Wire order is
// preserved and duplicate IDs are kept as separate entries.
type ChildRef struct {
	ID ObjectID
	X  int16
	Y  int16
}

// childList is embedded by object types whose children carry positions.
type childList struct {
	children []ChildRef
}

// Children returns the child entries in wire order. Callers must not modify
// the returned slice.
func (l *childList) Children() []ChildRef {
	return l.children
}

// findChild returns the index of the first entry referencing child, or -1.
func (l *childList) findChild(child ObjectID) int {
	for i, ref := range l.children {
		if ref.ID == child {
			return i
		}
	}
	return -1
}

// macroList is embedded by object types that reference macros. Macro
// references are opaque to the pool; this core never executes them.
type macroList struct {
	macros []uint16
}

// Macros returns the macro references in wire order. Callers must not modify
// the returned slice.
func (l *macroList) Macros() []uint16 {
	return l.macros
}

// positionedObject groups the shared base with a position-bearing child list
// and a macro list, and implements the child mutation operations common to
// the object types that embed it.
type positionedObject struct {
	objectBase
	childList
	macroList
}

// ChangeChildPosition moves the first child entry referencing child to the
// absolute position (x, y) and notifies observers.
func (o *positionedObject) ChangeChildPosition(child ObjectID, x, y int16) error {
	if err := o.beginMutation(); err != nil {
		return err
	}
	i := o.findChild(child)
	if i < 0 {
		o.emitf(SeverityError, "failed to change child position: child 0x%04X not found in object 0x%04X", child, o.id)
		return fmt.Errorf("%w: child 0x%04X of object 0x%04X", ErrObjectNotFound, child, o.id)
	}
	o.children[i].X = x
	o.children[i].Y = y
	o.notify()
	return nil
}

// ChangeChildLocation moves the first child entry referencing child by the
// relative offset (dx, dy) and notifies observers.
func (o *positionedObject) ChangeChildLocation(child ObjectID, dx, dy int16) error {
	if err := o.beginMutation(); err != nil {
		return err
	}
	i := o.findChild(child)
	if i < 0 {
		o.emitf(SeverityError, "failed to change child location: child 0x%04X not found in object 0x%04X", child, o.id)
		return fmt.Errorf("%w: child 0x%04X of object 0x%04X", ErrObjectNotFound, child, o.id)
	}
	o.children[i].X += dx
	o.children[i].Y += dy
	o.notify()
	return nil
}

// readChildren consumes n position-bearing child entries. The caller must
// have issued a Require covering the whole region.
func readChildren(cur *binary.Cursor, n uint8) ([]ChildRef, error) {
	if n == 0 {
		return nil, nil
	}
	children := make([]ChildRef, 0, n)
	for i := uint8(0); i < n; i++ {
		id, err := cur.ReadUint16()
		if err != nil {
			return nil, err
		}
		x, err := cur.ReadInt16()
		if err != nil {
			return nil, err
		}
		y, err := cur.ReadInt16()
		if err != nil {
			return nil, err
		}
		children = append(children, ChildRef{ID: ObjectID(id), X: x, Y: y})
	}
	return children, nil
}

// readFlatChildren consumes n bare child object IDs (soft key lists).
func readFlatChildren(cur *binary.Cursor, n uint8) ([]ObjectID, error) {
	if n == 0 {
		return nil, nil
	}
	children := make([]ObjectID, 0, n)
	for i := uint8(0); i < n; i++ {
		id, err := cur.ReadUint16()
		if err != nil {
			return nil, err
		}
		children = append(children, ObjectID(id))
	}
	return children, nil
}

// readMacros consumes n macro references.
func readMacros(cur *binary.Cursor, n uint8) ([]uint16, error) {
	if n == 0 {
		return nil, nil
	}
	macros := make([]uint16, 0, n)
	for i := uint8(0); i < n; i++ {
		ref, err := cur.ReadUint16()
		if err != nil {
			return nil, err
		}
		macros = append(macros, ref)
	}
	return macros, nil
}
