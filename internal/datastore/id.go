package datastore

import (
	"encoding/json"
	"strconv"
)

// ID is the canonical identifier for store records. The backing store mixes
// numeric ids (seeded rows) and string ids (rows it assigns itself), so every
// id is normalized to a string at this boundary and joins elsewhere can use
// plain equality.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
