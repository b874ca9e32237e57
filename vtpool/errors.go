// Package vtpool implements the object pool of an ISO 11783 Virtual Terminal:
// parsing the binary pool format into typed display objects, a uniform
// attribute access protocol, and change notification for the protocol layer.
package vtpool

import (
	"errors"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// Common errors
var (
	// ErrTruncated is returned when the pool data ends before a declared
	// field or element count is satisfied.
	ErrTruncated = errors.New("truncated object pool")

	// ErrUnexpectedEnd is the cursor-level error for a primitive read past
	// the end of the buffer. Parse errors wrapping ErrTruncated also wrap it.
	ErrUnexpectedEnd = binary.ErrUnexpectedEnd

	// ErrUnsupportedObjectType is returned for a recognized object type tag
	// that has no decoder, and for unknown type bytes.
	ErrUnsupportedObjectType = errors.New("unsupported object type")

	// ErrDuplicateObjectID is returned when two records in one pool declare
	// the same object ID. Duplicates are rejected, never overwritten.
	ErrDuplicateObjectID = errors.New("duplicate object ID")

	// ErrInvalidObjectID is returned when a record declares the reserved
	// NULL object ID 0xFFFF.
	ErrInvalidObjectID = errors.New("invalid object ID")

	// ErrAttributeNotFound is returned when an attribute ID is not in the
	// object's attribute table.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrTypeMismatch is returned when a new attribute value has the wrong
	// value kind for the attribute. The prior value is left unchanged.
	ErrTypeMismatch = errors.New("attribute type mismatch")

	// ErrImmutable is returned when changing an attribute that is read-only,
	// or any attribute of an object that declares itself immutable.
	ErrImmutable = errors.New("attribute is immutable")

	// ErrObjectNotFound is returned when a referenced object or child entry
	// does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrReentrantMutation is returned when an update callback attempts to
	// mutate the object it is being notified about.
	ErrReentrantMutation = errors.New("reentrant mutation during notification")
)
