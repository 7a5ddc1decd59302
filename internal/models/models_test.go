package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocation_SearchFieldsAndLabel(t *testing.T) {
	l := Location{ID: "loc-1", Name: "ATM Sudirman", Bank: "BRI", Address: "Jl. Sudirman 1", Hours: "24 Jam"}

	require.Equal(t, "loc-1", l.RecordID())
	require.Equal(t, []string{"ATM Sudirman", "BRI", "Jl. Sudirman 1", "24 Jam"}, l.SearchFields())
	require.Equal(t, "ATM Sudirman", l.Label())
}

func TestLocation_FieldMap(t *testing.T) {
	l := Location{Name: "ATM Thamrin", Bank: "BRI", Address: "Jl. Thamrin 5", Hours: "07:00-22:00", Lat: -6.19, Lng: 106.82}

	m := l.FieldMap()
	require.Equal(t, "ATM Thamrin", m[FieldName])
	require.Equal(t, "BRI", m[FieldBank])
	require.Equal(t, "-6.19", m[FieldLat])
	require.Equal(t, "106.82", m[FieldLng])
	require.Len(t, m, len(LocationFields()))
}

func TestLocation_FieldMap_ZeroCoordsSeedEmpty(t *testing.T) {
	m := Location{Name: "x"}.FieldMap()
	require.Equal(t, "", m[FieldLat])
	require.Equal(t, "", m[FieldLng])
}

func TestComment_SearchFieldsAndLabel(t *testing.T) {
	c := Comment{ID: "c-9", Text: "mesin rusak", Author: "Budi"}

	require.Equal(t, "c-9", c.RecordID())
	require.Equal(t, []string{"mesin rusak", "Budi"}, c.SearchFields())
	require.Equal(t, "mesin rusak", c.Label())
}

func TestComment_UnmarshalCreatedAt(t *testing.T) {
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","text":"ok","author":"Ani","createdAt":"2026-08-30T10:15:00Z"}`), &c))
	require.Equal(t, 2026, c.CreatedAt.Year())
}
