package vtpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agri/go-vtpool/vtpool"
)

func parseSoftKeyMask(t *testing.T) *vtpool.SoftKeyMask {
	t.Helper()
	b := &poolBuilder{}
	data := b.u16(0x0200).u8(uint8(vtpool.TypeSoftKeyMask)).
		u8(0x2A).    // background colour
		u8(3).u8(1). // 3 keys, 1 macro
		u16(0x0210).u16(0x0211).u16(0x0210).
		u16(0x0E0F).
		bytes()

	pool := vtpool.New()
	require.NoError(t, pool.Parse(data))
	obj, ok := pool.Get(0x0200)
	require.True(t, ok)
	return obj.(*vtpool.SoftKeyMask)
}

func TestSoftKeyMaskDecode(t *testing.T) {
	skm := parseSoftKeyMask(t)

	assert.Equal(t, vtpool.TypeSoftKeyMask, skm.ObjectType())
	assert.Equal(t, uint8(0x2A), skm.BackgroundColour())
	// Soft keys are a flat list; duplicates stay in wire order.
	assert.Equal(t, []vtpool.ObjectID{0x0210, 0x0211, 0x0210}, skm.Keys())
	assert.Equal(t, []uint16{0x0E0F}, skm.Macros())
}

func TestSoftKeyMaskChangeBackgroundColour(t *testing.T) {
	skm := parseSoftKeyMask(t)

	var notified []vtpool.ObjectID
	skm.RegisterUpdateCallback(func(id vtpool.ObjectID) { notified = append(notified, id) })

	require.NoError(t, skm.ChangeBackgroundColour(0x00))
	assert.Equal(t, uint8(0x00), skm.BackgroundColour())

	require.NoError(t, skm.ChangeAttribute(vtpool.SoftKeyMaskAttrBackgroundColour, vtpool.Uint8Value(0x55)))
	assert.Equal(t, uint8(0x55), skm.BackgroundColour())

	assert.Equal(t, []vtpool.ObjectID{0x0200, 0x0200}, notified)
}

func TestSoftKeyMaskAttributeErrors(t *testing.T) {
	skm := parseSoftKeyMask(t)

	err := skm.ChangeAttribute(vtpool.SoftKeyMaskAttrBackgroundColour, vtpool.Uint16Value(1))
	assert.ErrorIs(t, err, vtpool.ErrTypeMismatch)

	err = skm.ChangeAttribute(vtpool.AttrObjectType, vtpool.Uint8Value(4))
	assert.ErrorIs(t, err, vtpool.ErrImmutable)

	_, err = skm.Attribute(2)
	assert.ErrorIs(t, err, vtpool.ErrAttributeNotFound)
}
