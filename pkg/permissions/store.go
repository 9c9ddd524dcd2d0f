// Package permissions tracks the devices a caller has been granted access
// to. The store lives for the process lifetime: entries are added or
// refreshed, never pruned. A disconnected device keeps its entry, marked
// not-connected, until it reconnects or the process ends.
package permissions

import (
	"sync"

	"github.com/carverauto/webusb/pkg/logger"
	"github.com/carverauto/webusb/pkg/models"
)

// Store is an ordered allowed-device list, unique by identity triple
// (vendor id, product id, serial number).
type Store struct {
	mu      sync.RWMutex
	devices []*models.DeviceRecord
	index   map[models.DeviceIdentity]int
	logger  logger.Logger
}

// NewStore creates an empty allowed-device store.
func NewStore(log logger.Logger) *Store {
	return &Store{
		index:  make(map[models.DeviceIdentity]int),
		logger: log,
	}
}

// Grant records the device as allowed. If an entry with the same identity
// triple exists, its record is replaced in place; otherwise the device is
// appended. The stored record is a copy, so later mutation of the argument
// does not leak into the store.
func (s *Store) Grant(record *models.DeviceRecord) {
	if record == nil {
		return
	}

	identity := record.Identity()

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[identity]; ok {
		s.devices[i] = record.Clone()
		s.logger.Debug().Stringer("device", identity).Msg("refreshed allowed device")

		return
	}

	s.index[identity] = len(s.devices)
	s.devices = append(s.devices, record.Clone())
	s.logger.Debug().Stringer("device", identity).Msg("granted device access")
}

// Refresh replaces the stored record for the device's identity, if one
// exists. It reports whether the device was already allowed; an unknown
// identity leaves the store unchanged.
func (s *Store) Refresh(record *models.DeviceRecord) bool {
	if record == nil {
		return false
	}

	identity := record.Identity()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[identity]
	if !ok {
		return false
	}

	s.devices[i] = record.Clone()

	return true
}

// Contains reports whether the identity triple has an allowed entry.
func (s *Store) Contains(identity models.DeviceIdentity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[identity]

	return ok
}

// Get returns the stored record for the identity triple.
func (s *Store) Get(identity models.DeviceIdentity) (*models.DeviceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[identity]
	if !ok {
		return nil, false
	}

	return s.devices[i], true
}

// ByHandle returns the allowed device whose stored record currently carries
// the given transport handle.
func (s *Store) ByHandle(handle models.Handle) (*models.DeviceRecord, bool) {
	if handle == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.devices {
		if d.Handle == handle {
			return d, true
		}
	}

	return nil, false
}

// Disconnect marks the allowed device whose stored record carries the given
// handle as no longer connected. It returns the updated record, or false if
// no allowed device carries the handle.
func (s *Store) Disconnect(handle models.Handle) (*models.DeviceRecord, bool) {
	if handle == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.devices {
		if d.Handle == handle {
			updated := d.Clone()
			updated.Connected = false
			s.devices[i] = updated

			return updated, true
		}
	}

	return nil, false
}

// Devices returns an ordered snapshot of the allowed-device list. Entries
// are copies; mutating them does not affect the store.
func (s *Store) Devices() []*models.DeviceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.DeviceRecord, len(s.devices))
	for i, d := range s.devices {
		out[i] = d.Clone()
	}

	return out
}

// Len returns the number of allowed devices.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.devices)
}
