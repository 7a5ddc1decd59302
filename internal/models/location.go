package models

import "strconv"

// Location is one ATM location in the directory.
type Location struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Bank    string   `json:"bank"`
	Address string   `json:"address"`
	Hours   string   `json:"hours"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Images  []string `json:"images"`
}

func (l Location) RecordID() string { return l.ID }

// SearchFields covers name, bank, address and operating hours, the columns
// shown on the locations screen.
func (l Location) SearchFields() []string {
	return []string{l.Name, l.Bank, l.Address, l.Hours}
}

func (l Location) Label() string { return l.Name }

// Field names accepted by the location create/update form. Every field is
// mandatory on submit.
const (
	FieldName    = "name"
	FieldBank    = "bank"
	FieldAddress = "address"
	FieldHours   = "hours"
	FieldLat     = "lat"
	FieldLng     = "lng"
)

// LocationFields lists the form field names in entry order.
func LocationFields() []string {
	return []string{FieldName, FieldBank, FieldAddress, FieldHours, FieldLat, FieldLng}
}

// FieldMap returns the location's editable fields keyed by form field name,
// used to seed an edit draft.
func (l Location) FieldMap() map[string]string {
	return map[string]string{
		FieldName:    l.Name,
		FieldBank:    l.Bank,
		FieldAddress: l.Address,
		FieldHours:   l.Hours,
		FieldLat:     formatCoord(l.Lat),
		FieldLng:     formatCoord(l.Lng),
	}
}

// formatCoord renders a coordinate for form seeding. A zero coordinate seeds
// an empty field, mirroring how an unset value is presented for re-entry.
func formatCoord(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
