package vtpool

import (
	"errors"
	"fmt"
	"sort"

	"github.com/open-agri/go-vtpool/internal/binary"
)

// Pool owns the decoded object graph of one object pool: a registry from
// object ID to exactly one object, plus the version tag computed after a
// fully successful parse.
//
// A Pool is single-threaded by design. It is parsed once and thereafter
// mutated only through serialized protocol messages; callers wanting
// concurrent access must synchronize externally. Loading a new pool is a
// whole-object swap, not an in-place merge.
type Pool struct {
	objects map[ObjectID]Object
	version VersionTag
	parsed  bool
	opts    *poolOptions
}

// New creates an empty pool.
func New(opts ...Option) *Pool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Pool{opts: o}
}

// Parse decodes a binary object pool into the registry.
//
// The stream is a concatenation of records with no overall length prefix;
// each record is a 2-byte object ID, a 1-byte type tag and a type-specific
// body. Any decode error aborts the whole parse: the registry is only
// committed when every record decoded, so a failed parse never exposes a
// partially populated pool. On success the version tag is computed from the
// raw bytes.
func (p *Pool) Parse(data []byte) error {
	cur := binary.NewCursor(data)
	staged := make(map[ObjectID]Object)

	for cur.Remaining() > 0 {
		rawID, err := cur.ReadUint16()
		if err != nil {
			return p.failParse(fmt.Errorf("%w: reading object header: %w", ErrTruncated, err))
		}
		typeByte, err := cur.ReadUint8()
		if err != nil {
			return p.failParse(fmt.Errorf("%w: reading object header: %w", ErrTruncated, err))
		}
		id := ObjectID(rawID)
		typ := ObjectType(typeByte)

		if id == NullObjectID {
			return p.failParse(fmt.Errorf("%w: %s record declares the NULL object ID 0xFFFF", ErrInvalidObjectID, typ))
		}

		obj, err := decodeObject(cur, id, typ, p.opts.emitter)
		switch {
		case err == nil:
		case errors.Is(err, ErrUnsupportedObjectType) && p.opts.permissive:
			emitf(p.opts.emitter, SeverityWarning,
				"permissive parse stopping at unsupported %s object 0x%04X; %d trailing bytes ignored",
				typ, id, cur.Remaining())
			return p.commit(data, staged)
		case errors.Is(err, ErrUnsupportedObjectType):
			return p.failParse(fmt.Errorf("object 0x%04X: %w", id, err))
		default:
			return p.failParse(fmt.Errorf("%w: decoding %s object 0x%04X: %w", ErrTruncated, typ, id, err))
		}

		if _, exists := staged[id]; exists {
			return p.failParse(fmt.Errorf("%w: 0x%04X declared twice", ErrDuplicateObjectID, id))
		}
		staged[id] = obj
		emitf(p.opts.emitter, SeverityDebug, "decoded %s object 0x%04X", typ, id)
	}

	return p.commit(data, staged)
}

// commit publishes a fully decoded registry and computes the version tag.
func (p *Pool) commit(data []byte, staged map[ObjectID]Object) error {
	p.objects = staged
	p.version = p.opts.versionFn(data)
	p.parsed = true
	emitf(p.opts.emitter, SeverityDebug, "parsed object pool: %d objects, version %s", len(staged), p.version)
	return nil
}

// failParse emits a parse error and returns it without touching the
// registry.
func (p *Pool) failParse(err error) error {
	emitf(p.opts.emitter, SeverityError, "object pool parse failed: %v", err)
	return err
}

// Get returns the object with the given ID. A miss returns false and emits
// an Error diagnostic; it never panics.
func (p *Pool) Get(id ObjectID) (Object, bool) {
	obj, ok := p.objects[id]
	if !ok {
		emitf(p.opts.emitter, SeverityError, "failed to get object 0x%04X: object not found", id)
		return nil, false
	}
	return obj, true
}

// Len returns the number of objects in the registry.
func (p *Pool) Len() int {
	return len(p.objects)
}

// Version returns the pool's version tag. It is defined only after a
// successful Parse and is not cleared by later in-place mutations.
func (p *Pool) Version() (VersionTag, bool) {
	return p.version, p.parsed
}

// Objects returns all objects ordered by ID, for tooling and inspection.
func (p *Pool) Objects() []Object {
	ids := make([]ObjectID, 0, len(p.objects))
	for id := range p.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	objs := make([]Object, len(ids))
	for i, id := range ids {
		objs[i] = p.objects[id]
	}
	return objs
}

// decodeObject dispatches a record body to the decoder for its type tag. The
// 2-byte ID and 1-byte type have already been consumed.
func decodeObject(cur *binary.Cursor, id ObjectID, typ ObjectType, diag Emitter) (Object, error) {
	switch typ {
	case TypeWorkingSet:
		return decodeWorkingSet(cur, id, diag)
	case TypeDataMask:
		return decodeDataMask(cur, id, diag)
	case TypeAlarmMask:
		return decodeAlarmMask(cur, id, diag)
	case TypeContainer:
		return decodeContainer(cur, id, diag)
	case TypeSoftKeyMask:
		return decodeSoftKeyMask(cur, id, diag)
	case TypeKey:
		return decodeKey(cur, id, diag)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedObjectType, typ)
	}
}
