package dnsrecords

import "encoding/json"

// ValidationStatus classifies the trust state of a single zone, or of an
// entire TrustChain. Each value carries a display symbol and a color
// hint so a UI collaborator can render it without knowing DNSSEC
// semantics; the engine itself never interprets the symbol/color.
type ValidationStatus int

const (
	StatusUnknown ValidationStatus = iota
	StatusSecure
	StatusInsecure
	StatusBogus
	StatusIndeterminate
)

// String implements fmt.Stringer for log lines and text export.
func (s ValidationStatus) String() string {
	switch s {
	case StatusSecure:
		return "SECURE"
	case StatusInsecure:
		return "INSECURE"
	case StatusBogus:
		return "BOGUS"
	case StatusIndeterminate:
		return "INDETERMINATE"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the short display glyph for this status.
func (s ValidationStatus) Symbol() string {
	switch s {
	case StatusSecure:
		return "✓"
	case StatusInsecure:
		return "○"
	case StatusBogus:
		return "✗"
	case StatusIndeterminate:
		return "?"
	default:
		return "·"
	}
}

// Color returns a UI-agnostic color hint (a CSS-style name) for this
// status. Collaborators are free to ignore it or map it to their own
// palette.
func (s ValidationStatus) Color() string {
	switch s {
	case StatusSecure:
		return "green"
	case StatusInsecure:
		return "yellow"
	case StatusBogus:
		return "red"
	case StatusIndeterminate:
		return "gray"
	default:
		return "gray"
	}
}

// MarshalJSON renders the status as the {value, symbol, color} object
// described in spec §6 ("overall_status").
func (s ValidationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value  string `json:"value"`
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	}{
		Value:  s.String(),
		Symbol: s.Symbol(),
		Color:  s.Color(),
	})
}
