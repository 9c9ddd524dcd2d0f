package models

// Filter is one conjunction of optional match criteria against a device
// record. A nil field is a wildcard; a filter with no fields set matches
// every device.
type Filter struct {
	VendorID     *uint16 `json:"vendor_id,omitempty"`
	ProductID    *uint16 `json:"product_id,omitempty"`
	ClassCode    *uint8  `json:"class_code,omitempty"`
	SubclassCode *uint8  `json:"subclass_code,omitempty"`
	ProtocolCode *uint8  `json:"protocol_code,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
}

// RequestOptions parameterizes a device authorization request. Filters are
// combined as a disjunction: a device qualifies when any filter matches.
type RequestOptions struct {
	Filters []Filter `json:"filters"`
}
