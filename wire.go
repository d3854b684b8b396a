package apierror

import (
	"encoding/json"
	"fmt"
)

type WireLocation struct {
	Line, Column int
}

// WireError is a formatted error as received by a client.
type WireError struct {
	Message    string
	Locations  []WireLocation
	Path       []interface{}
	Extensions json.RawMessage
}

// WireExtensions holds the extension fields written for structured errors.
// All fields are empty for errors that were not structured.
type WireExtensions struct {
	Name       string                 `json:"name"`
	Key        Key                    `json:"key"`
	Code       Code                   `json:"code"`
	TimeThrown string                 `json:"timeThrown"`
	Data       map[string]interface{} `json:"data"`
}

func (err *WireError) Error() string {
	return "apierror: server failure: " + err.Message
}

// APIExtensions decodes the structured part of the extensions.
func (err *WireError) APIExtensions() (*WireExtensions, error) {
	var ext WireExtensions
	if len(err.Extensions) == 0 || string(err.Extensions) == "null" {
		return &ext, nil
	}
	if err := json.Unmarshal(err.Extensions, &ext); err != nil {
		return nil, fmt.Errorf("failed to decode error extensions: %v", err)
	}
	return &ext, nil
}

// DecodeWireError decodes a single serialized GraphQL error.
func DecodeWireError(b []byte) (*WireError, error) {
	var wireErr WireError
	if err := json.Unmarshal(b, &wireErr); err != nil {
		return nil, fmt.Errorf("failed to decode error payload: %v", err)
	}
	return &wireErr, nil
}
