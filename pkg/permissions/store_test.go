package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/webusb/pkg/logger"
	"github.com/carverauto/webusb/pkg/models"
)

func newTestStore() *Store {
	return NewStore(logger.NewTestLogger())
}

func keyboard() *models.DeviceRecord {
	return &models.DeviceRecord{
		Handle:       "usb-2-1",
		VendorID:     0x046d,
		ProductID:    0xc31c,
		SerialNumber: "KB01",
		Connected:    true,
		DeviceClass:  0x00,
		Interfaces: []models.InterfaceRecord{
			{Alternate: models.AlternateDescriptor{InterfaceClass: 0x03, InterfaceSubClass: 0x01, InterfaceProtocol: 0x01}},
		},
	}
}

func TestGrantAppendsNewIdentity(t *testing.T) {
	s := newTestStore()

	first := keyboard()
	second := keyboard()
	second.SerialNumber = "KB02"

	s.Grant(first)
	s.Grant(second)

	require.Equal(t, 2, s.Len())

	devices := s.Devices()
	require.Len(t, devices, 2)
	assert.Equal(t, "KB01", devices[0].SerialNumber)
	assert.Equal(t, "KB02", devices[1].SerialNumber)
}

func TestGrantReplacesSameIdentityInPlace(t *testing.T) {
	s := newTestStore()

	s.Grant(keyboard())

	other := keyboard()
	other.SerialNumber = "KB02"
	s.Grant(other)

	// Replugged with a fresh handle: same identity, entry keeps its slot.
	replugged := keyboard()
	replugged.Handle = "usb-2-3"
	s.Grant(replugged)

	require.Equal(t, 2, s.Len())

	devices := s.Devices()
	assert.Equal(t, "KB01", devices[0].SerialNumber)
	assert.Equal(t, models.Handle("usb-2-3"), devices[0].Handle)
	assert.Equal(t, "KB02", devices[1].SerialNumber)
}

func TestGrantIdentityIgnoresOtherFields(t *testing.T) {
	s := newTestStore()

	connected := keyboard()
	disconnected := keyboard()
	disconnected.Connected = false
	disconnected.Handle = ""

	s.Grant(connected)
	s.Grant(disconnected)

	require.Equal(t, 1, s.Len())

	got, ok := s.Get(connected.Identity())
	require.True(t, ok)
	assert.False(t, got.Connected)
}

func TestGrantCopiesRecord(t *testing.T) {
	s := newTestStore()

	record := keyboard()
	s.Grant(record)

	// Mutating the caller's record must not reach the store.
	record.Connected = false
	record.Interfaces[0].Alternate.InterfaceClass = 0xff

	got, ok := s.Get(keyboard().Identity())
	require.True(t, ok)
	assert.True(t, got.Connected)
	assert.Equal(t, uint8(0x03), got.Interfaces[0].Alternate.InterfaceClass)
}

func TestRefresh(t *testing.T) {
	s := newTestStore()

	t.Run("unknown identity leaves store unchanged", func(t *testing.T) {
		assert.False(t, s.Refresh(keyboard()))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("known identity is replaced", func(t *testing.T) {
		s.Grant(keyboard())

		replugged := keyboard()
		replugged.Handle = "usb-2-5"

		assert.True(t, s.Refresh(replugged))
		require.Equal(t, 1, s.Len())

		got, ok := s.Get(keyboard().Identity())
		require.True(t, ok)
		assert.Equal(t, models.Handle("usb-2-5"), got.Handle)
	})

	t.Run("nil record", func(t *testing.T) {
		assert.False(t, s.Refresh(nil))
	})
}

func TestContains(t *testing.T) {
	s := newTestStore()

	assert.False(t, s.Contains(keyboard().Identity()))

	s.Grant(keyboard())

	assert.True(t, s.Contains(keyboard().Identity()))
	assert.False(t, s.Contains(models.DeviceIdentity{VendorID: 0x046d, ProductID: 0xc31c, SerialNumber: "KB99"}))
}

func TestByHandle(t *testing.T) {
	s := newTestStore()
	s.Grant(keyboard())

	got, ok := s.ByHandle("usb-2-1")
	require.True(t, ok)
	assert.Equal(t, "KB01", got.SerialNumber)

	_, ok = s.ByHandle("usb-9-9")
	assert.False(t, ok)

	_, ok = s.ByHandle("")
	assert.False(t, ok)
}

func TestDisconnect(t *testing.T) {
	s := newTestStore()
	s.Grant(keyboard())

	got, ok := s.Disconnect("usb-2-1")
	require.True(t, ok)
	assert.False(t, got.Connected)

	// Entry persists, marked not-connected.
	require.Equal(t, 1, s.Len())
	stored, ok := s.Get(keyboard().Identity())
	require.True(t, ok)
	assert.False(t, stored.Connected)

	_, ok = s.Disconnect("usb-9-9")
	assert.False(t, ok)
}

func TestDevicesSnapshotIsIsolated(t *testing.T) {
	s := newTestStore()
	s.Grant(keyboard())

	snapshot := s.Devices()
	require.Len(t, snapshot, 1)

	snapshot[0].Connected = false
	snapshot[0].Interfaces[0].Alternate.InterfaceClass = 0xff

	got, ok := s.Get(keyboard().Identity())
	require.True(t, ok)
	assert.True(t, got.Connected)
	assert.Equal(t, uint8(0x03), got.Interfaces[0].Alternate.InterfaceClass)
}
