package radix

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strto/pkg/strto"
)

// Base selects the base of an Int.
type Base interface {
	Base() int
}

type (
	Bin struct{}
	Oct struct{}
	Dec struct{}
	Hex struct{}
	B36 struct{}
)

func (Bin) Base() int { return 2 }
func (Oct) Base() int { return 8 }
func (Dec) Base() int { return 10 }
func (Hex) Base() int { return 16 }
func (B36) Base() int { return 36 }

// Int is an integer of type T decoded from text in base B.
type Int[T constraints.Integer, B Base] struct {
	Value T
}

// Get returns the decoded value.
func (i Int[T, B]) Get() T {
	return i.Value
}

// UnmarshalText decodes a literal with an optional sign. On failure the
// previous value is kept.
func (i *Int[T, B]) UnmarshalText(text []byte) error {
	var b B
	v, err := strto.Parse[T](text, b.Base())
	if err != nil {
		return err
	}
	i.Value = v
	return nil
}

// UnmarshalJSON accepts a JSON string holding a literal in base B. Bare
// number tokens are accepted only when B is Dec, since JSON numbers are
// decimal. null is a no-op.
func (i *Int[T, B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return i.UnmarshalText([]byte(s))
	}
	if b := *new(B); b.Base() != 10 {
		return fmt.Errorf("%w: got %s for base %d", ErrUnquoted, data, b.Base())
	}
	return i.UnmarshalText(data)
}

// UnmarshalYAML decodes a scalar node, quoted or not.
func (i *Int[T, B]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrNotScalar, node.Line)
	}
	if err := i.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}
