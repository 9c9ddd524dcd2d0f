package models

import "fmt"

// Handle is an opaque transport-assigned token that identifies an attached
// device for the lifetime of its connection. Disconnect notifications carry
// only the handle, never a full record.
type Handle string

// DeviceIdentity is the stable identity triple of a USB device. Two records
// with equal identity describe the same physical device regardless of any
// other field differences.
type DeviceIdentity struct {
	VendorID     uint16 `json:"vendor_id"`
	ProductID    uint16 `json:"product_id"`
	SerialNumber string `json:"serial_number"`
}

func (id DeviceIdentity) String() string {
	return fmt.Sprintf("%04x:%04x:%s", id.VendorID, id.ProductID, id.SerialNumber)
}

// AlternateDescriptor is the active alternate setting of an interface,
// carrying the interface-level class triple.
type AlternateDescriptor struct {
	InterfaceClass    uint8 `json:"interface_class"`
	InterfaceSubClass uint8 `json:"interface_subclass"`
	InterfaceProtocol uint8 `json:"interface_protocol"`
}

// InterfaceRecord describes one interface of a device configuration.
type InterfaceRecord struct {
	InterfaceNumber uint8               `json:"interface_number"`
	Alternate       AlternateDescriptor `json:"alternate"`
}

// DeviceRecord is the transport layer's read-only descriptor of a physical
// device. The authorization layer holds references and never mutates fields;
// refreshed state arrives as a whole new record from the transport.
type DeviceRecord struct {
	Handle         Handle            `json:"handle,omitempty"`
	VendorID       uint16            `json:"vendor_id"`
	ProductID      uint16            `json:"product_id"`
	SerialNumber   string            `json:"serial_number,omitempty"`
	Connected      bool              `json:"connected"`
	DeviceClass    uint8             `json:"device_class"`
	DeviceSubClass uint8             `json:"device_subclass"`
	DeviceProtocol uint8             `json:"device_protocol"`
	Interfaces     []InterfaceRecord `json:"interfaces,omitempty"`
}

// Identity returns the device's identity triple.
func (d *DeviceRecord) Identity() DeviceIdentity {
	return DeviceIdentity{
		VendorID:     d.VendorID,
		ProductID:    d.ProductID,
		SerialNumber: d.SerialNumber,
	}
}

// Clone returns a deep copy of the record.
func (d *DeviceRecord) Clone() *DeviceRecord {
	if d == nil {
		return nil
	}

	out := *d

	if d.Interfaces != nil {
		out.Interfaces = make([]InterfaceRecord, len(d.Interfaces))
		copy(out.Interfaces, d.Interfaces)
	}

	return &out
}
