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

package usbauth

import "errors"

var (
	// ErrMissingOptions is returned when RequestDevice is called without options.
	ErrMissingOptions = errors.New("request options are required")
	// ErrMissingFilters is returned when the options carry no filter sequence.
	ErrMissingFilters = errors.New("filters are required")
	// ErrClassCodeRequired is returned when a filter sets a subclass code
	// without a class code.
	ErrClassCodeRequired = errors.New("class code is required when subclass code is specified")
	// ErrSubclassCodeRequired is returned when a filter sets a protocol code
	// without a subclass code.
	ErrSubclassCodeRequired = errors.New("subclass code is required when protocol code is specified")
	// ErrNoDeviceFound is returned when no enumerated device matches any filter.
	ErrNoDeviceFound = errors.New("no device matches the provided filters")
	// ErrDeviceNotSelected is returned when the selection callback declines
	// to choose a device.
	ErrDeviceNotSelected = errors.New("selected device not found")
	// ErrEnumerationFailed wraps transport failures during RequestDevice.
	ErrEnumerationFailed = errors.New("device enumeration failed")
	// ErrUnknownEventKind is returned for a listener registration against an
	// event kind the controller does not relay.
	ErrUnknownEventKind = errors.New("unknown event kind")
)
