package entity

import (
	"encoding/json"
	"time"
)

// ID is the resource identifier. It is opaque for the access layer, the entity service
// decides whether it is well formed.
type ID string

// String implements fmt.Stringer interface.
func (i ID) String() string {
	return string(i)
}

// Record is a single resource returned by the entity service.
type Record struct {
	ID           ID
	Kind         Kind
	Name         string
	Description  string
	CreationDate time.Time
	// Attributes are all the other resource fields as returned by the service.
	Attributes map[string]interface{}
}

const (
	fieldID           = "id"
	fieldName         = "name"
	fieldDescription  = "description"
	fieldCreationDate = "creation_date"
)

// Map flattens the record into a single map with the attributes.
func (r *Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.Attributes)+4)
	for k, v := range r.Attributes {
		m[k] = v
	}
	m[fieldID] = string(r.ID)
	if r.Name != "" {
		m[fieldName] = r.Name
	}
	if r.Description != "" {
		m[fieldDescription] = r.Description
	}
	if !r.CreationDate.IsZero() {
		m[fieldCreationDate] = r.CreationDate.UTC().Format(time.RFC3339Nano)
	}
	return m
}

// MarshalJSON implements json.Marshaler interface.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// UnmarshalJSON implements json.Unmarshaler interface.
// The well known fields are extracted, the rest is stored in the Attributes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.fromMap(raw)
}

func (r *Record) fromMap(raw map[string]interface{}) error {
	if v, ok := raw[fieldID].(string); ok {
		r.ID = ID(v)
	}
	if v, ok := raw[fieldName].(string); ok {
		r.Name = v
	}
	if v, ok := raw[fieldDescription].(string); ok {
		r.Description = v
	}
	if v, ok := raw[fieldCreationDate].(string); ok && v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return err
		}
		r.CreationDate = t
	}
	for _, k := range []string{fieldID, fieldName, fieldDescription, fieldCreationDate} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		r.Attributes = raw
	}
	return nil
}
