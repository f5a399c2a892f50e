package pointer

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant selects how viewport points are translated into surface space.
type Variant int

const (
	// VariantSized subtracts offsetLeft from x and offsetTop from y for every
	// modality, reports the surface size, and drops points while the surface
	// has no area.
	VariantSized Variant = iota
	// VariantLegacy subtracts offsetTop from x and offsetLeft from y for touch
	// and pointer input, and forwards mouse input untranslated. It never reads
	// the surface size.
	VariantLegacy
)

func (v Variant) String() string {
	switch v {
	case VariantSized:
		return "sized"
	case VariantLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Arity is the callback arity this variant was written against.
func (v Variant) Arity() Arity {
	if v == VariantLegacy {
		return ArityPoint
	}
	return AritySized
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", VariantSized.String():
		return VariantSized, nil
	case VariantLegacy.String():
		return VariantLegacy, nil
	default:
		return 0, errors.Errorf("unknown variant %q", s)
	}
}
