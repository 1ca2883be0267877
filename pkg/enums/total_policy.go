package enums

import "fmt"

// TotalPolicy decides how a sale's total_amount relates to its line items.
type TotalPolicy string

const (
	// TotalPolicyTrust persists the caller-supplied total as-is.
	TotalPolicyTrust TotalPolicy = "trust"
	// TotalPolicyRecompute derives the total from the line items and rejects
	// a conflicting caller-supplied value.
	TotalPolicyRecompute TotalPolicy = "recompute"
)

var validTotalPolicies = []TotalPolicy{
	TotalPolicyTrust,
	TotalPolicyRecompute,
}

// String implements fmt.Stringer.
func (p TotalPolicy) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p TotalPolicy) IsValid() bool {
	for _, candidate := range validTotalPolicies {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseTotalPolicy converts raw input into a TotalPolicy.
func ParseTotalPolicy(value string) (TotalPolicy, error) {
	for _, candidate := range validTotalPolicies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid total policy %q", value)
}
