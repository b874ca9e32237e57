package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// DataMask attribute IDs.
const (
	DataMaskAttrBackgroundColour uint8 = 1
	DataMaskAttrSoftKeyMask      uint8 = 2
)

// DataMask is a top-level object containing other objects. A data mask is
// activated by a working set to become the active set of objects on the
// display.
type DataMask struct {
	positionedObject
	backgroundColour uint8
	softKeyMask      ObjectID
}

// ObjectType implements Object.
func (d *DataMask) ObjectType() ObjectType {
	return TypeDataMask
}

// BackgroundColour returns the background colour index.
func (d *DataMask) BackgroundColour() uint8 {
	return d.backgroundColour
}

// SoftKeyMask returns the ID of the associated soft key mask, or
// NullObjectID when none is set.
func (d *DataMask) SoftKeyMask() ObjectID {
	return d.softKeyMask
}

// Attribute implements Object.
func (d *DataMask) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(d.ObjectType()), nil
	case DataMaskAttrBackgroundColour:
		return Attribute{ID: id, Value: Uint8Value(d.backgroundColour)}, nil
	case DataMaskAttrSoftKeyMask:
		return Attribute{ID: id, Value: ObjectIDValue(d.softKeyMask)}, nil
	default:
		d.emitf(SeverityError, "failed to get data mask attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: data mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object.
func (d *DataMask) ChangeAttribute(id uint8, value AttributeValue) error {
	switch id {
	case AttrObjectType:
		d.emitf(SeverityError, "failed to change data mask attribute %d: object type is read-only", id)
		return fmt.Errorf("%w: data mask attribute %d", ErrImmutable, id)
	case DataMaskAttrBackgroundColour:
		colour, ok := value.asUint8()
		if !ok {
			d.emitf(SeverityError, "failed to change data mask background colour: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return d.ChangeBackgroundColour(colour)
	case DataMaskAttrSoftKeyMask:
		mask, ok := value.asObjectID()
		if !ok {
			d.emitf(SeverityError, "failed to change data mask soft key mask: expected object ID, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindObjectID, value.Kind())
		}
		return d.ChangeSoftKeyMask(mask)
	default:
		d.emitf(SeverityError, "failed to change data mask attribute %d: attribute not found", id)
		return fmt.Errorf("%w: data mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeBackgroundColour sets the background colour index and notifies
// observers.
func (d *DataMask) ChangeBackgroundColour(colour uint8) error {
	if err := d.beginMutation(); err != nil {
		return err
	}
	d.backgroundColour = colour
	d.notify()
	return nil
}

// ChangeSoftKeyMask associates a different soft key mask and notifies
// observers.
func (d *DataMask) ChangeSoftKeyMask(mask ObjectID) error {
	if err := d.beginMutation(); err != nil {
		return err
	}
	d.softKeyMask = mask
	d.notify()
	return nil
}

// decodeDataMaskFields consumes the fixed fields shared by data and alarm
// masks: background colour and soft key mask reference.
func (d *DataMask) decodeDataMaskFields(cur *binary.Cursor) error {
	var err error
	if d.backgroundColour, err = cur.ReadUint8(); err != nil {
		return err
	}
	mask, err := cur.ReadUint16()
	if err != nil {
		return err
	}
	d.softKeyMask = ObjectID(mask)
	return nil
}

// decodeListSection consumes the child and macro counts and their lists,
// bounds-checking the whole region up front.
func (d *DataMask) decodeListSection(cur *binary.Cursor) error {
	numChildren, err := cur.ReadUint8()
	if err != nil {
		return err
	}
	numMacros, err := cur.ReadUint8()
	if err != nil {
		return err
	}
	if err := cur.Require(int(numChildren)*6 + int(numMacros)*2); err != nil {
		return err
	}
	if d.children, err = readChildren(cur, numChildren); err != nil {
		return err
	}
	if d.macros, err = readMacros(cur, numMacros); err != nil {
		return err
	}
	return nil
}

// decodeDataMask consumes a data mask record body.
func decodeDataMask(cur *binary.Cursor, id ObjectID, diag Emitter) (*DataMask, error) {
	d := &DataMask{}
	d.id = id
	d.diag = diag
	if err := d.decodeDataMaskFields(cur); err != nil {
		return nil, err
	}
	if err := d.decodeListSection(cur); err != nil {
		return nil, err
	}
	return d, nil
}
