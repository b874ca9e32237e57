package vtpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agri/go-vtpool/vtpool"
)

// Reference fixture: a complete working set record as produced by a real
// pool generator.
var workingSetFixture = []byte{
	0xCD, 0xAB, // object ID 0xABCD
	0x00,       // type: WorkingSet
	0x02,       // background colour
	0x01,       // selectable
	0xE8, 0x03, // active mask 0x03E8
	0x01,       // 1 child
	0x00,       // 0 macros
	0x02,       // 2 languages
	0xF8, 0x2A, // child ID 0x2AF8
	0x00, 0x00, // child x
	0x00, 0x00, // child y
	0x65, 0x6E, // "en"
	0x64, 0x65, // "de"
}

func TestParseWorkingSetFixture(t *testing.T) {
	pool := vtpool.New()
	require.NoError(t, pool.Parse(workingSetFixture))
	require.Equal(t, 1, pool.Len())

	obj, ok := pool.Get(0xABCD)
	require.True(t, ok)
	assert.Equal(t, vtpool.ObjectID(0xABCD), obj.ObjectID())
	assert.Equal(t, vtpool.TypeWorkingSet, obj.ObjectType())

	ws, ok := obj.(*vtpool.WorkingSet)
	require.True(t, ok)
	assert.Equal(t, uint8(0x02), ws.BackgroundColour())
	assert.True(t, ws.Selectable())
	assert.Equal(t, vtpool.ObjectID(0x03E8), ws.ActiveMask())
	assert.Equal(t, []vtpool.ChildRef{{ID: 0x2AF8, X: 0, Y: 0}}, ws.Children())
	assert.Empty(t, ws.Macros())
	assert.Equal(t, []string{"en", "de"}, ws.Languages())
}

func TestParsePreservesDuplicateChildren(t *testing.T) {
	// Two children with the same ID must stay as separate positional entries.
	b := &poolBuilder{}
	data := b.workingSetHeader(0x0010, 0x00, 0, 0x0100, 3, 1, 1).
		child(0x0042, 1, 2).
		child(0x0042, 3, 4).
		child(0x0043, -5, -6).
		u16(0xBEEF). // macro
		raw("de").
		bytes()

	pool := vtpool.New()
	require.NoError(t, pool.Parse(data))

	obj, ok := pool.Get(0x0010)
	require.True(t, ok)
	ws := obj.(*vtpool.WorkingSet)
	assert.Equal(t, []vtpool.ChildRef{
		{ID: 0x0042, X: 1, Y: 2},
		{ID: 0x0042, X: 3, Y: 4},
		{ID: 0x0043, X: -5, Y: -6},
	}, ws.Children())
	assert.Equal(t, []uint16{0xBEEF}, ws.Macros())
	assert.Equal(t, []string{"de"}, ws.Languages())
}

func TestParseMultipleRecords(t *testing.T) {
	b := &poolBuilder{}
	b.workingSetHeader(0x0001, 0x07, 1, 0x0002, 0, 0, 0)
	// DataMask 0x0002: bg 0x11, soft key mask 0x0003, 1 child, 0 macros
	b.u16(0x0002).u8(uint8(vtpool.TypeDataMask)).
		u8(0x11).u16(0x0003).u8(1).u8(0).
		child(0x0004, 10, 20)
	// SoftKeyMask 0x0003: bg 0x22, 2 keys, 0 macros
	b.u16(0x0003).u8(uint8(vtpool.TypeSoftKeyMask)).
		u8(0x22).u8(2).u8(0).u16(0x0005).u16(0x0005)

	pool := vtpool.New()
	require.NoError(t, pool.Parse(b.bytes()))
	assert.Equal(t, 3, pool.Len())

	objs := pool.Objects()
	require.Len(t, objs, 3)
	assert.Equal(t, vtpool.ObjectID(0x0001), objs[0].ObjectID())
	assert.Equal(t, vtpool.ObjectID(0x0002), objs[1].ObjectID())
	assert.Equal(t, vtpool.ObjectID(0x0003), objs[2].ObjectID())

	skm := objs[2].(*vtpool.SoftKeyMask)
	assert.Equal(t, []vtpool.ObjectID{0x0005, 0x0005}, skm.Keys())
}

func TestParseTruncationAtEveryBoundary(t *testing.T) {
	b := &poolBuilder{}
	data := b.workingSetHeader(0x0010, 0x00, 1, 0x0100, 1, 1, 1).
		child(0x0042, 1, 2).
		u16(0xBEEF).
		raw("en").
		bytes()

	for cut := 1; cut < len(data); cut++ {
		pool := vtpool.New()
		err := pool.Parse(data[:cut])
		require.Error(t, err, "truncation at byte %d must fail", cut)
		assert.ErrorIs(t, err, vtpool.ErrUnexpectedEnd, "truncation at byte %d", cut)

		// No registry may be exposed after a failed parse.
		_, ok := pool.Get(0x0010)
		assert.False(t, ok, "truncation at byte %d exposed a partial object", cut)
		_, defined := pool.Version()
		assert.False(t, defined, "truncation at byte %d defined a version tag", cut)
	}
}

func TestParseDuplicateObjectID(t *testing.T) {
	data := append(minimalWorkingSet(0x0010), minimalWorkingSet(0x0010)...)

	pool := vtpool.New()
	err := pool.Parse(data)
	require.ErrorIs(t, err, vtpool.ErrDuplicateObjectID)

	_, ok := pool.Get(0x0010)
	assert.False(t, ok)
}

func TestParseNullObjectID(t *testing.T) {
	pool := vtpool.New()
	err := pool.Parse(minimalWorkingSet(0xFFFF))
	require.ErrorIs(t, err, vtpool.ErrInvalidObjectID)
	assert.Equal(t, 0, pool.Len())
}

func TestParseUnsupportedTypeStrict(t *testing.T) {
	b := &poolBuilder{}
	data := b.u16(0x0020).u8(uint8(vtpool.TypeButton)).bytes()

	pool := vtpool.New()
	err := pool.Parse(data)
	require.ErrorIs(t, err, vtpool.ErrUnsupportedObjectType)
	assert.Contains(t, err.Error(), "Button")
}

func TestParsePermissiveStopsAtUnsupported(t *testing.T) {
	b := &poolBuilder{}
	b.buf = append(b.buf, minimalWorkingSet(0x0010)...)
	b.u16(0x0020).u8(uint8(vtpool.TypeButton)).u8(0xAA).u8(0xBB)

	emitter := &captureEmitter{}
	pool := vtpool.New(vtpool.WithPermissiveTypes(), vtpool.WithEmitter(emitter))
	require.NoError(t, pool.Parse(b.bytes()))

	assert.Equal(t, 1, pool.Len())
	_, ok := pool.Get(0x0010)
	assert.True(t, ok)
	_, defined := pool.Version()
	assert.True(t, defined)

	warnings := emitter.bySeverity(vtpool.SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Button")
}

func TestParseEmptyPool(t *testing.T) {
	pool := vtpool.New()
	require.NoError(t, pool.Parse(nil))
	assert.Equal(t, 0, pool.Len())

	version, defined := pool.Version()
	assert.True(t, defined)
	assert.NotEmpty(t, version)
}

func TestGetMissEmitsDiagnostic(t *testing.T) {
	emitter := &captureEmitter{}
	pool := vtpool.New(vtpool.WithEmitter(emitter))
	require.NoError(t, pool.Parse(minimalWorkingSet(0x0010)))

	obj, ok := pool.Get(0x9999)
	assert.False(t, ok)
	assert.Nil(t, obj)
	assert.NotEmpty(t, emitter.bySeverity(vtpool.SeverityError))
}

func TestVersionTagIdentifiesLoadedPool(t *testing.T) {
	data := minimalWorkingSet(0x0010)

	first := vtpool.New()
	require.NoError(t, first.Parse(data))
	v1, defined := first.Version()
	require.True(t, defined)

	second := vtpool.New()
	require.NoError(t, second.Parse(data))
	v2, _ := second.Version()
	assert.Equal(t, v1, v2, "version tag must be deterministic over content")

	other := vtpool.New()
	require.NoError(t, other.Parse(minimalWorkingSet(0x0011)))
	v3, _ := other.Version()
	assert.NotEqual(t, v1, v3)

	// Mutation must not clear or change the tag: it identifies the loaded
	// pool, not the runtime state.
	obj, ok := first.Get(0x0010)
	require.True(t, ok)
	require.NoError(t, obj.(*vtpool.WorkingSet).ChangeBackgroundColour(0x55))
	after, defined := first.Version()
	assert.True(t, defined)
	assert.Equal(t, v1, after)
}

func TestWithVersionFunc(t *testing.T) {
	pool := vtpool.New(vtpool.WithVersionFunc(func(data []byte) vtpool.VersionTag {
		return vtpool.VersionTag("custom")
	}))
	require.NoError(t, pool.Parse(minimalWorkingSet(0x0010)))
	version, defined := pool.Version()
	assert.True(t, defined)
	assert.Equal(t, vtpool.VersionTag("custom"), version)
}

func TestParseDuplicateAcrossTypes(t *testing.T) {
	// Same ID on records of different types is still a duplicate.
	b := &poolBuilder{}
	b.buf = append(b.buf, minimalWorkingSet(0x0010)...)
	b.u16(0x0010).u8(uint8(vtpool.TypeContainer)).
		u16(100).u16(50).u8(0).u8(0).u8(0)

	pool := vtpool.New()
	err := pool.Parse(b.bytes())
	require.ErrorIs(t, err, vtpool.ErrDuplicateObjectID)
}
