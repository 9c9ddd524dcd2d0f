/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package usbauth implements the host-side device-authorization core of a
// WebUSB-compatible API: device discovery, permission-gated requests, and
// hot-plug relay for devices the caller has been granted access to.
package usbauth

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/carverauto/webusb/pkg/events"
	"github.com/carverauto/webusb/pkg/logger"
	"github.com/carverauto/webusb/pkg/models"
	"github.com/carverauto/webusb/pkg/permissions"
	"github.com/carverauto/webusb/pkg/transport"
)

// SelectFunc chooses one device from the matched candidates of a request.
// Returning a nil device rejects the request with ErrDeviceNotSelected.
type SelectFunc func(ctx context.Context, candidates []*models.DeviceRecord) (*models.DeviceRecord, error)

// relay tracks the controller-side listener set for one native event kind
// together with the adapter subscription backing it. The subscription exists
// exactly while at least one listener is registered.
type relay struct {
	emitter  *events.Emitter[*models.DeviceRecord]
	nativeID uuid.UUID
	active   bool
}

// Controller exposes the device authorization surface. It consults the
// transport adapter for enumeration, gates results through the allowed-device
// store, and re-emits hot-plug events for recognized devices only.
type Controller struct {
	adapter      transport.Adapter
	store        *permissions.Store
	selectDevice SelectFunc
	logger       logger.Logger

	// mu guards the native-subscription state of both relays.
	mu     sync.Mutex
	relays map[transport.EventKind]*relay
}

// New creates a Controller with an empty allowed-device list. A nil selectFn
// makes RequestDevice pick the first matching device in enumeration order.
func New(adapter transport.Adapter, selectFn SelectFunc, log logger.Logger) *Controller {
	return &Controller{
		adapter:      adapter,
		store:        permissions.NewStore(log),
		selectDevice: selectFn,
		logger:       log,
		relays: map[transport.EventKind]*relay{
			transport.EventConnect:    {emitter: events.NewEmitter[*models.DeviceRecord]()},
			transport.EventDisconnect: {emitter: events.NewEmitter[*models.DeviceRecord]()},
		},
	}
}

// GetDevices returns the currently-connected devices the caller has been
// granted access to, in the adapter's enumeration order. Transport failures
// propagate unwrapped.
func (c *Controller) GetDevices(ctx context.Context) ([]*models.DeviceRecord, error) {
	devices, err := c.adapter.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	allowed := make([]*models.DeviceRecord, 0, len(devices))

	for _, d := range devices {
		if d.Connected && c.store.Contains(d.Identity()) {
			allowed = append(allowed, d)
		}
	}

	return allowed, nil
}

// RequestDevice asks for access to a device matching the given filters. On
// success the chosen device is recorded as allowed (replacing any existing
// entry with the same identity triple) and returned.
func (c *Controller) RequestDevice(ctx context.Context, options *models.RequestOptions) (*models.DeviceRecord, error) {
	if options == nil {
		return nil, ErrMissingOptions
	}

	if options.Filters == nil {
		return nil, ErrMissingFilters
	}

	if err := validateFilters(options.Filters); err != nil {
		return nil, err
	}

	devices, err := c.adapter.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumerationFailed, err)
	}

	matched := make([]*models.DeviceRecord, 0, len(devices))

	for _, d := range devices {
		if matchesAny(d, options.Filters) {
			matched = append(matched, d)
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoDeviceFound
	}

	chosen := matched[0]

	if c.selectDevice != nil {
		chosen, err = c.selectDevice(ctx, matched)
		if err != nil {
			return nil, err
		}

		if chosen == nil {
			return nil, ErrDeviceNotSelected
		}
	}

	c.store.Grant(chosen)

	c.logger.Info().
		Stringer("device", chosen.Identity()).
		Int("candidates", len(matched)).
		Msg("device access granted")

	return chosen, nil
}

// AllowedDevices returns an ordered snapshot of the allowed-device list,
// including entries whose devices are currently disconnected.
func (c *Controller) AllowedDevices() []*models.DeviceRecord {
	return c.store.Devices()
}

// On registers a listener for "connect" or "disconnect" events. The first
// listener of a kind activates the corresponding native adapter
// subscription.
func (c *Controller) On(kind transport.EventKind, fn func(*models.DeviceRecord)) (events.ListenerID, error) {
	r, ok := c.relays[kind]
	if !ok {
		return uuid.Nil, ErrUnknownEventKind
	}

	id := r.emitter.Add(fn)
	c.syncNativeSubscription(kind, r)

	return id, nil
}

// Off removes a listener previously registered with On. Removing the last
// listener of a kind releases the native adapter subscription. It reports
// whether a listener was removed.
func (c *Controller) Off(kind transport.EventKind, id events.ListenerID) bool {
	r, ok := c.relays[kind]
	if !ok {
		return false
	}

	removed := r.emitter.Remove(id)
	c.syncNativeSubscription(kind, r)

	return removed
}

// Close removes all listeners and releases any native subscriptions.
func (c *Controller) Close() {
	for kind, r := range c.relays {
		r.emitter.Close()
		c.syncNativeSubscription(kind, r)
	}
}

// syncNativeSubscription reconciles the adapter subscription for one event
// kind with the relay's listener count: subscribed iff at least one listener
// is registered. Called after every listener add and remove, so the native
// subscription is held lazily and never duplicated.
func (c *Controller) syncNativeSubscription(kind transport.EventKind, r *relay) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hasListeners := r.emitter.Len() > 0

	switch {
	case hasListeners && !r.active:
		r.nativeID = c.adapter.AddListener(kind, c.handleNativeEvent)
		r.active = true
		c.logger.Debug().Str("kind", string(kind)).Msg("subscribed to native hot-plug events")
	case !hasListeners && r.active:
		c.adapter.RemoveListener(kind, r.nativeID)
		r.nativeID = uuid.Nil
		r.active = false
		c.logger.Debug().Str("kind", string(kind)).Msg("released native hot-plug subscription")
	}
}

// handleNativeEvent filters adapter notifications through the allowed-device
// store. Notifications for devices the caller never requested are dropped.
func (c *Controller) handleNativeEvent(ev transport.Event) {
	switch ev.Kind {
	case transport.EventConnect:
		c.relayConnect(ev.Device)
	case transport.EventDisconnect:
		c.relayDisconnect(ev.Handle)
	}
}

func (c *Controller) relayConnect(device *models.DeviceRecord) {
	if device == nil {
		return
	}

	if !c.store.Refresh(device) {
		c.logger.Debug().
			Stringer("device", device.Identity()).
			Msg("dropping connect for unauthorized device")

		return
	}

	c.relays[transport.EventConnect].emitter.Emit(device)
}

func (c *Controller) relayDisconnect(handle models.Handle) {
	device, ok := c.store.Disconnect(handle)
	if !ok {
		c.logger.Debug().
			Str("handle", string(handle)).
			Msg("dropping disconnect for unknown handle")

		return
	}

	c.relays[transport.EventDisconnect].emitter.Emit(device)
}
