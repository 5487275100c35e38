package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetApplicationProperty fetches one server setting by key.
// Depending on the server version the response is either the property
// object or a one-element array; both are accepted.
func (e *Entity) GetApplicationProperty(ctx context.Context, key string) (*ApplicationProperty, error) {
	ep := Endpoint{
		Op:       OpGetApplicationProperty,
		Method:   http.MethodGet,
		Path:     "/application-properties",
		Query:    []Param{{Name: "key", Value: key}},
		Expected: http.StatusOK,
	}

	raw, err := execute[json.RawMessage](ctx, e, ep)
	if err != nil {
		return nil, err
	}

	prop, err := decodeProperty(*raw)
	if err != nil {
		jerr := newError(ep, ReasonDecodeFailed, err)
		jerr.StatusCode = http.StatusOK
		jerr.Body = string(*raw)
		return nil, jerr
	}
	return prop, nil
}

func decodeProperty(raw json.RawMessage) (*ApplicationProperty, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []ApplicationProperty
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) != 1 {
			return nil, fmt.Errorf("expected one property, got %d", len(list))
		}
		return &list[0], nil
	}

	var prop ApplicationProperty
	if err := json.Unmarshal(trimmed, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}
