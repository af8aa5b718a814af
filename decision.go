package keygate

// Decision is the outcome of an acceptance check.
type Decision int

const (
	// Allowed means the validator accepted the value (or the key was unknown
	// under AllowUnknown).
	Allowed Decision = iota
	// RejectedInvalidValue means the key is registered and its validator
	// rejected the value. Malformed input is reported as this, never as a
	// fault.
	RejectedInvalidValue
	// RejectedUnknownKey means no validator is registered for the key.
	RejectedUnknownKey
)

// String returns a stable lowercase token, useful in logs and wire payloads.
func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case RejectedInvalidValue:
		return "rejected_invalid_value"
	case RejectedUnknownKey:
		return "rejected_unknown_key"
	default:
		return "unknown_decision"
	}
}

// MarshalText lets decisions embed directly into JSON/YAML payloads.
func (d Decision) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Rejected reports whether the decision denies the write for any reason.
func (d Decision) Rejected() bool { return d != Allowed }
