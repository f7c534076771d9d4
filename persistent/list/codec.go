package list

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Lists encode as plain sequences of their elements in every format. Decoding replaces
// the receiver by a freshly built list; lists sharing structure with the receiver are
// not affected.

// encMode encodes with Core Deterministic Encoding (RFC 8949 §4.2): equal lists
// produce identical bytes, which Digest relies on.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("persistent.list: CBOR encoder initialization failed: " + err.Error())
	}
	if decMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic("persistent.list: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalJSON encodes l as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON decodes a JSON array into l.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var xs []T
	if err := json.Unmarshal(data, &xs); err != nil {
		return err
	}
	*l = FromSlice(xs)
	return nil
}

// MarshalCBOR encodes l as a CBOR array, using deterministic encoding.
func (l List[T]) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(l.ToSlice())
}

// UnmarshalCBOR decodes a CBOR array into l.
func (l *List[T]) UnmarshalCBOR(data []byte) error {
	var xs []T
	if err := decMode.Unmarshal(data, &xs); err != nil {
		return err
	}
	*l = FromSlice(xs)
	return nil
}

// MarshalYAML encodes l as a YAML sequence.
func (l List[T]) MarshalYAML() (interface{}, error) {
	return l.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence into l. A null node decodes to the empty list.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*l = Empty[T]()
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("persistent: cannot decode YAML node at line %d into a list: expected a sequence", value.Line)
	}
	var xs []T
	if err := value.Decode(&xs); err != nil {
		return err
	}
	*l = FromSlice(xs)
	return nil
}
