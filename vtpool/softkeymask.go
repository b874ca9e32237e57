package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// SoftKeyMask attribute IDs.
const (
	SoftKeyMaskAttrBackgroundColour uint8 = 1
)

// SoftKeyMask is a top-level object containing key objects. Soft keys form a
// flat list; their entries carry no position.
type SoftKeyMask struct {
	objectBase
	macroList
	backgroundColour uint8
	keys             []ObjectID
}

// ObjectType implements Object.
func (s *SoftKeyMask) ObjectType() ObjectType {
	return TypeSoftKeyMask
}

// BackgroundColour returns the background colour index.
func (s *SoftKeyMask) BackgroundColour() uint8 {
	return s.backgroundColour
}

// Keys returns the referenced key object IDs in wire order. Callers must not
// modify the returned slice.
func (s *SoftKeyMask) Keys() []ObjectID {
	return s.keys
}

// Attribute implements Object.
func (s *SoftKeyMask) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(TypeSoftKeyMask), nil
	case SoftKeyMaskAttrBackgroundColour:
		return Attribute{ID: id, Value: Uint8Value(s.backgroundColour)}, nil
	default:
		s.emitf(SeverityError, "failed to get soft key mask attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: soft key mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object.
func (s *SoftKeyMask) ChangeAttribute(id uint8, value AttributeValue) error {
	switch id {
	case AttrObjectType:
		s.emitf(SeverityError, "failed to change soft key mask attribute %d: object type is read-only", id)
		return fmt.Errorf("%w: soft key mask attribute %d", ErrImmutable, id)
	case SoftKeyMaskAttrBackgroundColour:
		colour, ok := value.asUint8()
		if !ok {
			s.emitf(SeverityError, "failed to change soft key mask background colour: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return s.ChangeBackgroundColour(colour)
	default:
		s.emitf(SeverityError, "failed to change soft key mask attribute %d: attribute not found", id)
		return fmt.Errorf("%w: soft key mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeBackgroundColour sets the background colour index and notifies
// observers.
func (s *SoftKeyMask) ChangeBackgroundColour(colour uint8) error {
	if err := s.beginMutation(); err != nil {
		return err
	}
	s.backgroundColour = colour
	s.notify()
	return nil
}

// decodeSoftKeyMask consumes a soft key mask record body: background colour,
// then the declared flat key list and macro list.
func decodeSoftKeyMask(cur *binary.Cursor, id ObjectID, diag Emitter) (*SoftKeyMask, error) {
	s := &SoftKeyMask{}
	s.id = id
	s.diag = diag

	var err error
	if s.backgroundColour, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	numKeys, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	numMacros, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if err := cur.Require(int(numKeys)*2 + int(numMacros)*2); err != nil {
		return nil, err
	}
	if s.keys, err = readFlatChildren(cur, numKeys); err != nil {
		return nil, err
	}
	if s.macros, err = readMacros(cur, numMacros); err != nil {
		return nil, err
	}
	return s, nil
}
