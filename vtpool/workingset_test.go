package vtpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agri/go-vtpool/vtpool"
)

func parseWorkingSet(t *testing.T) *vtpool.WorkingSet {
	t.Helper()
	pool := vtpool.New()
	require.NoError(t, pool.Parse(workingSetFixture))
	obj, ok := pool.Get(0xABCD)
	require.True(t, ok)
	return obj.(*vtpool.WorkingSet)
}

func TestWorkingSetAttributes(t *testing.T) {
	ws := parseWorkingSet(t)

	tests := []struct {
		name string
		id   uint8
		want vtpool.AttributeValue
	}{
		{"type", vtpool.AttrObjectType, vtpool.Uint8Value(uint8(vtpool.TypeWorkingSet))},
		{"background colour", vtpool.WorkingSetAttrBackgroundColour, vtpool.Uint8Value(0x02)},
		{"selectable", vtpool.WorkingSetAttrSelectable, vtpool.BoolValue(true)},
		{"active mask", vtpool.WorkingSetAttrActiveMask, vtpool.ObjectIDValue(0x03E8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := ws.Attribute(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, attr.ID)
			assert.Equal(t, tt.want, attr.Value)
		})
	}

	_, err := ws.Attribute(9)
	assert.ErrorIs(t, err, vtpool.ErrAttributeNotFound)
}

func TestWorkingSetIsAttributeImmutable(t *testing.T) {
	ws := parseWorkingSet(t)

	var fired int
	ws.RegisterUpdateCallback(func(vtpool.ObjectID) { fired++ })

	for id := uint8(0); id < 4; id++ {
		err := ws.ChangeAttribute(id, vtpool.Uint8Value(1))
		assert.ErrorIs(t, err, vtpool.ErrImmutable, "attribute %d", id)
	}
	assert.Zero(t, fired, "immutable change must not notify")

	// The decoded state is untouched.
	assert.Equal(t, uint8(0x02), ws.BackgroundColour())
	assert.Equal(t, vtpool.ObjectID(0x03E8), ws.ActiveMask())
}

func TestWorkingSetSemanticSetters(t *testing.T) {
	ws := parseWorkingSet(t)

	var notified []vtpool.ObjectID
	ws.RegisterUpdateCallback(func(id vtpool.ObjectID) { notified = append(notified, id) })

	require.NoError(t, ws.ChangeActiveMask(0x0FA0))
	assert.Equal(t, vtpool.ObjectID(0x0FA0), ws.ActiveMask())

	require.NoError(t, ws.ChangeBackgroundColour(0x10))
	assert.Equal(t, uint8(0x10), ws.BackgroundColour())

	assert.Equal(t, []vtpool.ObjectID{0xABCD, 0xABCD}, notified)
}

func TestWorkingSetChildMutation(t *testing.T) {
	ws := parseWorkingSet(t)

	require.NoError(t, ws.ChangeChildPosition(0x2AF8, 100, -50))
	assert.Equal(t, vtpool.ChildRef{ID: 0x2AF8, X: 100, Y: -50}, ws.Children()[0])

	require.NoError(t, ws.ChangeChildLocation(0x2AF8, -10, 25))
	assert.Equal(t, vtpool.ChildRef{ID: 0x2AF8, X: 90, Y: -25}, ws.Children()[0])

	err := ws.ChangeChildPosition(0x1234, 0, 0)
	assert.ErrorIs(t, err, vtpool.ErrObjectNotFound)
}

func TestWorkingSetDecodeConsumesDeclaredLength(t *testing.T) {
	// The record body is 7 fixed bytes plus 6 per child, 2 per macro and 2
	// per language; trailing records must start exactly after that.
	b := &poolBuilder{}
	b.workingSetHeader(0x0001, 0x00, 0, 0x0002, 2, 2, 1).
		child(0x000A, 0, 0).
		child(0x000A, 1, 1).
		u16(0x0100).u16(0x0200).
		raw("fr")
	wsLen := len(b.bytes())
	assert.Equal(t, 3+7+2*6+2*2+1*2, wsLen)

	b.buf = append(b.buf, minimalWorkingSet(0x0002)...)

	pool := vtpool.New()
	require.NoError(t, pool.Parse(b.bytes()))
	assert.Equal(t, 2, pool.Len())

	obj, ok := pool.Get(0x0001)
	require.True(t, ok)
	ws := obj.(*vtpool.WorkingSet)
	assert.Len(t, ws.Children(), 2)
	assert.Equal(t, []uint16{0x0100, 0x0200}, ws.Macros())
	assert.Equal(t, []string{"fr"}, ws.Languages())
}
