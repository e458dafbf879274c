// Package api defines the request and response messages of the ordena.v1
// services and the JSON codec they travel in.
package api

import (
	json "github.com/goccy/go-json"
)

// CodecName is the Connect codec name; requests use Content-Type application/json.
const CodecName = "json"

// Codec marshals plain Go structs as JSON for Connect.
type Codec struct{}

func (Codec) Name() string {
	return CodecName
}

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
