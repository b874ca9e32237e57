package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// WorkingSet attribute IDs.
const (
	WorkingSetAttrBackgroundColour uint8 = 1
	WorkingSetAttrSelectable       uint8 = 2
	WorkingSetAttrActiveMask       uint8 = 3
)

// WorkingSet is the top-level object describing an implement's ECU or group
// of ECUs. Working sets declare themselves immutable through the attribute
// protocol; mutation goes through the semantic setters.
type WorkingSet struct {
	positionedObject
	backgroundColour uint8
	selectable       bool
	activeMask       ObjectID
	languages        []string
}

// ObjectType implements Object.
func (w *WorkingSet) ObjectType() ObjectType {
	return TypeWorkingSet
}

// BackgroundColour returns the background colour index.
func (w *WorkingSet) BackgroundColour() uint8 {
	return w.backgroundColour
}

// Selectable reports whether the operator may select this working set.
func (w *WorkingSet) Selectable() bool {
	return w.selectable
}

// ActiveMask returns the ID of the currently active data or alarm mask.
func (w *WorkingSet) ActiveMask() ObjectID {
	return w.activeMask
}

// Languages returns the two-letter language codes in wire order. Callers
// must not modify the returned slice.
func (w *WorkingSet) Languages() []string {
	return w.languages
}

// Attribute implements Object.
func (w *WorkingSet) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(TypeWorkingSet), nil
	case WorkingSetAttrBackgroundColour:
		return Attribute{ID: id, Value: Uint8Value(w.backgroundColour)}, nil
	case WorkingSetAttrSelectable:
		return Attribute{ID: id, Value: BoolValue(w.selectable)}, nil
	case WorkingSetAttrActiveMask:
		return Attribute{ID: id, Value: ObjectIDValue(w.activeMask)}, nil
	default:
		w.emitf(SeverityError, "failed to get working set attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: working set attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object. Working set attributes are not mutable
// through this path; it always fails with ErrImmutable and fires no observer.
func (w *WorkingSet) ChangeAttribute(id uint8, _ AttributeValue) error {
	w.emitf(SeverityError, "failed to change working set attribute %d: working set objects do not have mutable attributes", id)
	return fmt.Errorf("%w: working set attribute %d", ErrImmutable, id)
}

// ChangeActiveMask activates a different data or alarm mask and notifies
// observers.
func (w *WorkingSet) ChangeActiveMask(mask ObjectID) error {
	if err := w.beginMutation(); err != nil {
		return err
	}
	w.activeMask = mask
	w.notify()
	return nil
}

// ChangeBackgroundColour sets the background colour index and notifies
// observers.
func (w *WorkingSet) ChangeBackgroundColour(colour uint8) error {
	if err := w.beginMutation(); err != nil {
		return err
	}
	w.backgroundColour = colour
	w.notify()
	return nil
}

// decodeWorkingSet consumes a working set record body: background colour,
// selectable flag and active mask, then the declared child, macro and
// language counts followed by their lists.
func decodeWorkingSet(cur *binary.Cursor, id ObjectID, diag Emitter) (*WorkingSet, error) {
	w := &WorkingSet{}
	w.id = id
	w.diag = diag

	var err error
	if w.backgroundColour, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	sel, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	w.selectable = sel != 0
	mask, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	w.activeMask = ObjectID(mask)

	numChildren, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	numMacros, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	numLanguages, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if err := cur.Require(int(numChildren)*6 + int(numMacros)*2 + int(numLanguages)*2); err != nil {
		return nil, err
	}

	if w.children, err = readChildren(cur, numChildren); err != nil {
		return nil, err
	}
	if w.macros, err = readMacros(cur, numMacros); err != nil {
		return nil, err
	}
	for i := uint8(0); i < numLanguages; i++ {
		code, err := cur.ReadBytes(2)
		if err != nil {
			return nil, err
		}
		w.languages = append(w.languages, string(code))
	}
	return w, nil
}
