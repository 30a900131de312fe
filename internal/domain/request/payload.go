package request

import (
	"encoding/json"
	"maps"
	"strings"

	"service-broker/internal/domain/agency"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	PayloadKeyCountry    = "destination_country"
	PayloadKeyResourceID = "resource_id"
)

var (
	ErrInvalidPayload  = errs.Wrap(errs.ErrValidation, "payload must be a JSON object")
	ErrInvalidCountry  = errs.Wrap(errs.ErrValidation, "destination_country must be a non-empty string")
	ErrInvalidResource = errs.Wrap(errs.ErrValidation, "resource_id must be a UUID")
	ErrCountryRequired = errs.Wrap(errs.ErrValidation, "destination_country is required for this service category")
)

// Payload holds the category-specific fields of an application.
type Payload struct {
	fields map[string]any
}

func NewPayload(fields map[string]any) (Payload, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	p := Payload{fields: maps.Clone(fields)}

	if raw, ok := p.fields[PayloadKeyCountry]; ok {
		s, isString := raw.(string)
		if !isString || strings.TrimSpace(s) == "" {
			return Payload{}, ErrInvalidCountry
		}
		p.fields[PayloadKeyCountry] = agency.NormalizeCountry(s)
	}
	if raw, ok := p.fields[PayloadKeyResourceID]; ok {
		s, isString := raw.(string)
		if !isString {
			return Payload{}, ErrInvalidResource
		}
		if _, err := uuid.Parse(s); err != nil {
			return Payload{}, ErrInvalidResource
		}
	}
	return p, nil
}

func PayloadFromJSON(data []byte) (Payload, error) {
	if len(data) == 0 {
		return NewPayload(nil)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return Payload{}, errs.Wrapf(ErrInvalidPayload, "decode payload: %v", err)
	}
	return NewPayload(fields)
}

func (p Payload) Country() string {
	s, _ := p.fields[PayloadKeyCountry].(string)
	return s
}

func (p Payload) ResourceID() *uuid.UUID {
	s, ok := p.fields[PayloadKeyResourceID].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func (p Payload) Fields() map[string]any {
	return maps.Clone(p.fields)
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}
