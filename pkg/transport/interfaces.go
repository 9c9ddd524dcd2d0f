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

//go:generate mockgen -destination=mock_transport.go -package=transport github.com/carverauto/webusb/pkg/transport Adapter

// Package transport defines the contract of the platform USB adapter: the
// collaborator that performs physical enumeration and delivers hot-plug
// notifications. Implementations live outside this module.
package transport

import (
	"context"

	"github.com/google/uuid"

	"github.com/carverauto/webusb/pkg/models"
)

// EventKind names a native hot-plug event stream.
type EventKind string

const (
	// EventConnect carries a full DeviceRecord for a newly attached device.
	EventConnect EventKind = "connect"
	// EventDisconnect carries only the opaque handle of a detached device.
	EventDisconnect EventKind = "disconnect"
)

// Event is a hot-plug notification delivered by the adapter.
type Event struct {
	Kind EventKind
	// Device is populated for EventConnect.
	Device *models.DeviceRecord
	// Handle is populated for EventDisconnect.
	Handle models.Handle
}

// ListenerFunc receives native hot-plug events. Callbacks run synchronously
// with respect to the adapter's delivery: each event is fully handled before
// the adapter dispatches the next one.
type ListenerFunc func(Event)

// Adapter is the platform USB layer consumed by the authorization
// controller.
type Adapter interface {
	// ListDevices enumerates all known devices, connected and
	// previously-seen. Enumeration order is stable for the lifetime of a
	// call and carries through to the controller's results.
	ListDevices(ctx context.Context) ([]*models.DeviceRecord, error)

	// AddListener registers a callback for the given native event stream
	// and returns a token for removal.
	AddListener(kind EventKind, fn ListenerFunc) uuid.UUID

	// RemoveListener unregisters a previously added callback.
	RemoveListener(kind EventKind, id uuid.UUID)
}
