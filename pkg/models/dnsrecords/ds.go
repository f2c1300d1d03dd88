package dnsrecords

import (
	"strings"

	"github.com/miekg/dns"
)

var digestTypeNames = map[uint8]string{
	1: "SHA-1",
	2: "SHA-256",
	3: "GOST R 34.11-94",
	4: "SHA-384",
}

// DigestTypeName returns the display name for a DS digest type number.
func DigestTypeName(digestType uint8) string {
	if name, ok := digestTypeNames[digestType]; ok {
		return name
	}
	return unknownName(digestType)
}

// DSInfo is the canonical internal representation of a DS (Delegation
// Signer) record held by a parent zone. ValidatesKey is set by the
// validator once this DS is matched against a child DNSKEY.
type DSInfo struct {
	KeyTag         uint16 `json:"key_tag"`
	Algorithm      uint8  `json:"algorithm"`
	AlgorithmName  string `json:"algorithm_name"`
	DigestType     uint8  `json:"digest_type"`
	DigestTypeName string `json:"digest_type_name"`
	Digest         string `json:"digest"`

	// ValidatesKey is the key tag of the DNSKEY this DS was matched
	// against, set by the validator on a successful digest match. Zero
	// means no match has been recorded.
	ValidatesKey uint16 `json:"validates_key"`
}

// NewDSInfo builds a DSInfo from a parsed DS resource record. Digest is
// normalised to upper-case hex per spec §3 ("digest (hex, upper-case)").
func NewDSInfo(rr *dns.DS) DSInfo {
	return DSInfo{
		KeyTag:         rr.KeyTag,
		Algorithm:      rr.Algorithm,
		AlgorithmName:  AlgorithmName(rr.Algorithm),
		DigestType:     rr.DigestType,
		DigestTypeName: DigestTypeName(rr.DigestType),
		Digest:         strings.ToUpper(rr.Digest),
	}
}
