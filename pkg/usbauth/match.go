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

import "github.com/carverauto/webusb/pkg/models"

// matchesAny reports whether the device satisfies at least one filter. An
// empty filter slice matches nothing.
func matchesAny(device *models.DeviceRecord, filters []models.Filter) bool {
	for i := range filters {
		if matchesFilter(device, &filters[i]) {
			return true
		}
	}

	return false
}

// matchesFilter reports whether the device satisfies every non-wildcard
// criterion of the filter. Vendor id, product id, and serial number are
// compared at the device level. The class/subclass/protocol family matches
// against the device's own triple or against any interface's alternate
// triple; one interface must satisfy the whole family on its own.
func matchesFilter(device *models.DeviceRecord, filter *models.Filter) bool {
	if filter.VendorID != nil && *filter.VendorID != device.VendorID {
		return false
	}

	if filter.ProductID != nil && *filter.ProductID != device.ProductID {
		return false
	}

	if filter.SerialNumber != nil && *filter.SerialNumber != device.SerialNumber {
		return false
	}

	return matchesClassFamily(device, filter)
}

func matchesClassFamily(device *models.DeviceRecord, filter *models.Filter) bool {
	if filter.ClassCode == nil && filter.SubclassCode == nil && filter.ProtocolCode == nil {
		return true
	}

	if tripleMatches(device.DeviceClass, device.DeviceSubClass, device.DeviceProtocol, filter) {
		return true
	}

	for i := range device.Interfaces {
		alt := &device.Interfaces[i].Alternate
		if tripleMatches(alt.InterfaceClass, alt.InterfaceSubClass, alt.InterfaceProtocol, filter) {
			return true
		}
	}

	return false
}

func tripleMatches(class, subclass, protocol uint8, filter *models.Filter) bool {
	if filter.ClassCode != nil && *filter.ClassCode != class {
		return false
	}

	if filter.SubclassCode != nil && *filter.SubclassCode != subclass {
		return false
	}

	if filter.ProtocolCode != nil && *filter.ProtocolCode != protocol {
		return false
	}

	return true
}

// validateFilters enforces the class-family field hierarchy: protocol code
// requires subclass code, subclass code requires class code. The first
// invalid filter aborts validation; later filters are not checked.
func validateFilters(filters []models.Filter) error {
	for i := range filters {
		f := &filters[i]

		if f.ProtocolCode != nil && f.SubclassCode == nil {
			return ErrSubclassCodeRequired
		}

		if f.SubclassCode != nil && f.ClassCode == nil {
			return ErrClassCodeRequired
		}
	}

	return nil
}
