package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// Key attribute IDs.
const (
	KeyAttrBackgroundColour uint8 = 1
	KeyAttrKeyCode          uint8 = 2
)

// Key describes a soft key: a VT-rendered button bound to a key code.
type Key struct {
	positionedObject
	backgroundColour uint8
	keyCode          uint8
	selected         bool
}

// ObjectType implements Object.
func (k *Key) ObjectType() ObjectType {
	return TypeKey
}

// BackgroundColour returns the background colour index.
func (k *Key) BackgroundColour() uint8 {
	return k.backgroundColour
}

// KeyCode returns the key code reported when the key is activated.
func (k *Key) KeyCode() uint8 {
	return k.keyCode
}

// IsSelected reports whether the key is currently selected.
func (k *Key) IsSelected() bool {
	return k.selected
}

// Select marks the key as selected and notifies observers.
func (k *Key) Select() error {
	if err := k.beginMutation(); err != nil {
		return err
	}
	k.selected = true
	k.notify()
	return nil
}

// Deselect clears the selection flag and notifies observers.
func (k *Key) Deselect() error {
	if err := k.beginMutation(); err != nil {
		return err
	}
	k.selected = false
	k.notify()
	return nil
}

// Attribute implements Object.
func (k *Key) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(TypeKey), nil
	case KeyAttrBackgroundColour:
		return Attribute{ID: id, Value: Uint8Value(k.backgroundColour)}, nil
	case KeyAttrKeyCode:
		return Attribute{ID: id, Value: Uint8Value(k.keyCode)}, nil
	default:
		k.emitf(SeverityError, "failed to get key attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: key attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object.
func (k *Key) ChangeAttribute(id uint8, value AttributeValue) error {
	switch id {
	case AttrObjectType:
		k.emitf(SeverityError, "failed to change key attribute %d: object type is read-only", id)
		return fmt.Errorf("%w: key attribute %d", ErrImmutable, id)
	case KeyAttrBackgroundColour:
		colour, ok := value.asUint8()
		if !ok {
			k.emitf(SeverityError, "failed to change key background colour: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return k.ChangeBackgroundColour(colour)
	case KeyAttrKeyCode:
		code, ok := value.asUint8()
		if !ok {
			k.emitf(SeverityError, "failed to change key code: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return k.ChangeKeyCode(code)
	default:
		k.emitf(SeverityError, "failed to change key attribute %d: attribute not found", id)
		return fmt.Errorf("%w: key attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeBackgroundColour sets the background colour index and notifies
// observers.
func (k *Key) ChangeBackgroundColour(colour uint8) error {
	if err := k.beginMutation(); err != nil {
		return err
	}
	k.backgroundColour = colour
	k.notify()
	return nil
}

// ChangeKeyCode sets the key code and notifies observers.
func (k *Key) ChangeKeyCode(code uint8) error {
	if err := k.beginMutation(); err != nil {
		return err
	}
	k.keyCode = code
	k.notify()
	return nil
}

// decodeKey consumes a key record body: background colour and key code, then
// the declared child and macro lists.
func decodeKey(cur *binary.Cursor, id ObjectID, diag Emitter) (*Key, error) {
	k := &Key{}
	k.id = id
	k.diag = diag

	var err error
	if k.backgroundColour, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if k.keyCode, err = cur.ReadUint8(); err != nil {
		return nil, err
	}

	numChildren, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	numMacros, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if err := cur.Require(int(numChildren)*6 + int(numMacros)*2); err != nil {
		return nil, err
	}
	if k.children, err = readChildren(cur, numChildren); err != nil {
		return nil, err
	}
	if k.macros, err = readMacros(cur, numMacros); err != nil {
		return nil, err
	}
	return k, nil
}
