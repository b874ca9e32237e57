package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// AlarmMask attribute IDs. IDs 1 and 2 are shared with DataMask.
const (
	AlarmMaskAttrPriority       uint8 = 3
	AlarmMaskAttrAcousticSignal uint8 = 4
)

// Alarm mask priorities, highest first.
const (
	AlarmPriorityHigh   uint8 = 0
	AlarmPriorityMedium uint8 = 1
	AlarmPriorityLow    uint8 = 2
)

// AlarmMask is a data mask variant describing an alarm display. Its wire
// layout extends the data mask fixed fields with a priority and an acoustic
// signal code, and its attribute table extends the data mask table.
type AlarmMask struct {
	DataMask
	priority       uint8
	acousticSignal uint8
}

// ObjectType implements Object.
func (a *AlarmMask) ObjectType() ObjectType {
	return TypeAlarmMask
}

// Priority returns the alarm priority (0 is highest).
func (a *AlarmMask) Priority() uint8 {
	return a.priority
}

// AcousticSignal returns the acoustic signal code.
func (a *AlarmMask) AcousticSignal() uint8 {
	return a.acousticSignal
}

// Attribute implements Object. The shared data mask attributes delegate to
// the embedded DataMask table; the alarm-specific ones follow.
func (a *AlarmMask) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(TypeAlarmMask), nil
	case DataMaskAttrBackgroundColour, DataMaskAttrSoftKeyMask:
		return a.DataMask.Attribute(id)
	case AlarmMaskAttrPriority:
		return Attribute{ID: id, Value: Uint8Value(a.priority)}, nil
	case AlarmMaskAttrAcousticSignal:
		return Attribute{ID: id, Value: Uint8Value(a.acousticSignal)}, nil
	default:
		a.emitf(SeverityError, "failed to get alarm mask attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: alarm mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object.
func (a *AlarmMask) ChangeAttribute(id uint8, value AttributeValue) error {
	switch id {
	case AttrObjectType:
		a.emitf(SeverityError, "failed to change alarm mask attribute %d: object type is read-only", id)
		return fmt.Errorf("%w: alarm mask attribute %d", ErrImmutable, id)
	case DataMaskAttrBackgroundColour, DataMaskAttrSoftKeyMask:
		return a.DataMask.ChangeAttribute(id, value)
	case AlarmMaskAttrPriority:
		priority, ok := value.asUint8()
		if !ok {
			a.emitf(SeverityError, "failed to change alarm mask priority: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return a.ChangePriority(priority)
	case AlarmMaskAttrAcousticSignal:
		signal, ok := value.asUint8()
		if !ok {
			a.emitf(SeverityError, "failed to change alarm mask acoustic signal: expected uint8, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint8, value.Kind())
		}
		return a.ChangeAcousticSignal(signal)
	default:
		a.emitf(SeverityError, "failed to change alarm mask attribute %d: attribute not found", id)
		return fmt.Errorf("%w: alarm mask attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangePriority sets the alarm priority and notifies observers.
func (a *AlarmMask) ChangePriority(priority uint8) error {
	if err := a.beginMutation(); err != nil {
		return err
	}
	a.priority = priority
	a.notify()
	return nil
}

// ChangeAcousticSignal sets the acoustic signal code and notifies observers.
func (a *AlarmMask) ChangeAcousticSignal(signal uint8) error {
	if err := a.beginMutation(); err != nil {
		return err
	}
	a.acousticSignal = signal
	a.notify()
	return nil
}

// decodeAlarmMask consumes an alarm mask record body.
func decodeAlarmMask(cur *binary.Cursor, id ObjectID, diag Emitter) (*AlarmMask, error) {
	a := &AlarmMask{}
	a.id = id
	a.diag = diag
	if err := a.decodeDataMaskFields(cur); err != nil {
		return nil, err
	}
	var err error
	if a.priority, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if a.acousticSignal, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if err := a.decodeListSection(cur); err != nil {
		return nil, err
	}
	return a, nil
}
