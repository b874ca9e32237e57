package vtpool

import (
	"fmt"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// Container attribute IDs.
const (
	ContainerAttrWidth  uint8 = 1
	ContainerAttrHeight uint8 = 2
	ContainerAttrHidden uint8 = 3
)

// Container groups objects so they can be moved, shown or hidden together.
type Container struct {
	positionedObject
	width  uint16
	height uint16
	hidden bool
}

// ObjectType implements Object.
func (c *Container) ObjectType() ObjectType {
	return TypeContainer
}

// Width returns the container width in pixels.
func (c *Container) Width() uint16 {
	return c.width
}

// Height returns the container height in pixels.
func (c *Container) Height() uint16 {
	return c.height
}

// Hidden reports whether the container and its children are hidden.
func (c *Container) Hidden() bool {
	return c.hidden
}

// Attribute implements Object.
func (c *Container) Attribute(id uint8) (Attribute, error) {
	switch id {
	case AttrObjectType:
		return typeAttribute(TypeContainer), nil
	case ContainerAttrWidth:
		return Attribute{ID: id, Value: Uint16Value(c.width)}, nil
	case ContainerAttrHeight:
		return Attribute{ID: id, Value: Uint16Value(c.height)}, nil
	case ContainerAttrHidden:
		return Attribute{ID: id, Value: BoolValue(c.hidden)}, nil
	default:
		c.emitf(SeverityError, "failed to get container attribute %d: attribute not found", id)
		return Attribute{}, fmt.Errorf("%w: container attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeAttribute implements Object.
func (c *Container) ChangeAttribute(id uint8, value AttributeValue) error {
	switch id {
	case AttrObjectType:
		c.emitf(SeverityError, "failed to change container attribute %d: object type is read-only", id)
		return fmt.Errorf("%w: container attribute %d", ErrImmutable, id)
	case ContainerAttrWidth:
		width, ok := value.asUint16()
		if !ok {
			c.emitf(SeverityError, "failed to change container width: expected uint16, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint16, value.Kind())
		}
		return c.ChangeSize(width, c.height)
	case ContainerAttrHeight:
		height, ok := value.asUint16()
		if !ok {
			c.emitf(SeverityError, "failed to change container height: expected uint16, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindUint16, value.Kind())
		}
		return c.ChangeSize(c.width, height)
	case ContainerAttrHidden:
		hidden, ok := value.asBool()
		if !ok {
			c.emitf(SeverityError, "failed to change container hidden flag: expected bool, got %s", value.Kind())
			return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, KindBool, value.Kind())
		}
		return c.SetHidden(hidden)
	default:
		c.emitf(SeverityError, "failed to change container attribute %d: attribute not found", id)
		return fmt.Errorf("%w: container attribute %d", ErrAttributeNotFound, id)
	}
}

// ChangeSize resizes the container and notifies observers.
func (c *Container) ChangeSize(width, height uint16) error {
	if err := c.beginMutation(); err != nil {
		return err
	}
	c.width = width
	c.height = height
	c.notify()
	return nil
}

// SetHidden shows or hides the container and notifies observers.
func (c *Container) SetHidden(hidden bool) error {
	if err := c.beginMutation(); err != nil {
		return err
	}
	c.hidden = hidden
	c.notify()
	return nil
}

// decodeContainer consumes a container record body: width, height, hidden
// flag, then the declared child and macro lists.
func decodeContainer(cur *binary.Cursor, id ObjectID, diag Emitter) (*Container, error) {
	c := &Container{}
	c.id = id
	c.diag = diag

	var err error
	if c.width, err = cur.ReadUint16(); err != nil {
		return nil, err
	}
	if c.height, err = cur.ReadUint16(); err != nil {
		return nil, err
	}
	hidden, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	c.hidden = hidden != 0

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
	if c.children, err = readChildren(cur, numChildren); err != nil {
		return nil, err
	}
	if c.macros, err = readMacros(cur, numMacros); err != nil {
		return nil, err
	}
	return c, nil
}
