package domain

import (
	"fmt"
	"strings"
)

// SizeVariant names a pre-rendered version of every image in the gallery.
type SizeVariant string

const (
	Original SizeVariant = "original"
	Large    SizeVariant = "large"
	Medium   SizeVariant = "medium"
	Small    SizeVariant = "small"
)

// Canonical is the variant whose directory defines which images exist at all.
const Canonical = Original

// DefaultVariants is the variant set served when no configuration overrides it.
var DefaultVariants = []SizeVariant{Original, Large, Medium, Small}

// UnknownVariantPolicy decides what happens to size labels outside the configured set.
type UnknownVariantPolicy string

const (
	// FallbackToCanonical serves unknown labels from the canonical variant.
	FallbackToCanonical UnknownVariantPolicy = "fallback"
	// RejectUnknown fails unknown labels with ErrInvalidVariant.
	RejectUnknown UnknownVariantPolicy = "strict"
)

// ParseUnknownVariantPolicy accepts "fallback" or "strict"; empty means fallback.
func ParseUnknownVariantPolicy(s string) (UnknownVariantPolicy, error) {
	switch UnknownVariantPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FallbackToCanonical:
		return FallbackToCanonical, nil
	case RejectUnknown:
		return RejectUnknown, nil
	default:
		return "", fmt.Errorf("unknown size policy %q (want %q or %q)", s, FallbackToCanonical, RejectUnknown)
	}
}

// VariantRoot binds a variant to the directory holding its files.
type VariantRoot struct {
	Variant SizeVariant
	Dir     string
}

// Variants is the immutable size-to-directory mapping built once at startup.
// It is safe to share between goroutines.
type Variants struct {
	order  []SizeVariant
	roots  map[SizeVariant]string
	policy UnknownVariantPolicy
}

// NewVariants validates the mapping: the canonical variant must be present,
// labels must be unique and every directory non-empty.
func NewVariants(roots []VariantRoot, policy UnknownVariantPolicy) (*Variants, error) {
	if policy != FallbackToCanonical && policy != RejectUnknown {
		return nil, fmt.Errorf("invalid unknown variant policy %q", policy)
	}

	v := &Variants{
		order:  make([]SizeVariant, 0, len(roots)),
		roots:  make(map[SizeVariant]string, len(roots)),
		policy: policy,
	}

	for _, r := range roots {
		if r.Variant == "" {
			return nil, fmt.Errorf("variant name cannot be empty")
		}
		if r.Dir == "" {
			return nil, fmt.Errorf("variant %q has no directory", r.Variant)
		}
		if _, dup := v.roots[r.Variant]; dup {
			return nil, fmt.Errorf("variant %q configured more than once", r.Variant)
		}
		v.order = append(v.order, r.Variant)
		v.roots[r.Variant] = r.Dir
	}

	if _, ok := v.roots[Canonical]; !ok {
		return nil, fmt.Errorf("variant %q must be configured", Canonical)
	}

	return v, nil
}

// Lookup returns the directory of a configured variant.
func (v *Variants) Lookup(variant SizeVariant) (string, bool) {
	dir, ok := v.roots[variant]
	return dir, ok
}

// CanonicalDir returns the directory of the canonical variant.
func (v *Variants) CanonicalDir() string {
	return v.roots[Canonical]
}

func (v *Variants) Policy() UnknownVariantPolicy {
	return v.policy
}

// Labels returns the configured variants in declaration order.
func (v *Variants) Labels() []SizeVariant {
	out := make([]SizeVariant, len(v.order))
	copy(out, v.order)
	return out
}
