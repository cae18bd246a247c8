package refined

import json "github.com/goccy/go-json"

// The scalar refined types marshal as their bare underlying value and
// validate on unmarshal through the same Validate path as the constructors,
// so decoding can never produce an invalid instance.

// MarshalJSON implements json.Marshaler.
func (s NonEmptyString) MarshalJSON() ([]byte, error) { return json.Marshal(s.value) }

// UnmarshalJSON implements json.Unmarshaler, rejecting invalid values.
func (s *NonEmptyString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewNonEmptyString(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s NonBlankString) MarshalJSON() ([]byte, error) { return json.Marshal(s.value) }

// UnmarshalJSON implements json.Unmarshaler, rejecting invalid values.
func (s *NonBlankString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewNonBlankString(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n PosInt) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

// UnmarshalJSON implements json.Unmarshaler, rejecting invalid values.
func (n *PosInt) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewPosInt(raw)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NonNegInt) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

// UnmarshalJSON implements json.Unmarshaler, rejecting invalid values.
func (n *NonNegInt) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewNonNegInt(raw)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s UUIDString) MarshalJSON() ([]byte, error) { return json.Marshal(s.value) }

// UnmarshalJSON implements json.Unmarshaler, rejecting invalid values.
func (s *UUIDString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewUUIDString(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
