package timespan

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// wireDuration is the serialized shape of a Duration: the normalized
// (secs, nanos) pair, never a rendered string. CBOR uses integer keys for
// compactness.
type wireDuration struct {
	Secs  int64 `json:"secs" yaml:"secs" cbor:"1,keyasint"`
	Nanos int32 `json:"nanos" yaml:"nanos" cbor:"2,keyasint"`
}

// cborEncMode is the CBOR encoder mode for durations, configured for
// deterministic output.
var cborEncMode cbor.EncMode

// cborDecMode is the CBOR decoder mode for durations.
var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("timespan: failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("timespan: failed to create CBOR decoder mode: %v", err))
	}
}

// fromWire validates a decoded pair and stores it. Decoded input is
// untrusted: the nanos band and the [Min, Max] range must both be checked
// before the pair can be adopted as a normalized Duration.
func (d *Duration) fromWire(w wireDuration) error {
	if w.Nanos < 0 || w.Nanos >= nanosPerSec {
		return fmt.Errorf("timespan: decoded nanos %d outside [0, 1e9): %w", w.Nanos, ErrOutOfRange)
	}
	v := Duration{secs: w.Secs, nanos: w.Nanos}
	if v.Cmp(Min) < 0 || v.Cmp(Max) > 0 {
		return fmt.Errorf("timespan: decoded duration exceeds representable range: %w", ErrOutOfRange)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireDuration{Secs: d.secs, Nanos: d.nanos})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var w wireDuration
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return d.fromWire(w)
}

// MarshalCBOR implements cbor.Marshaler.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(wireDuration{Secs: d.secs, Nanos: d.nanos})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var w wireDuration
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return err
	}
	return d.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return wireDuration{Secs: d.secs, Nanos: d.nanos}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var w wireDuration
	if err := node.Decode(&w); err != nil {
		return err
	}
	return d.fromWire(w)
}
