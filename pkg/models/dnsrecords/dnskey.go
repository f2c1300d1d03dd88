package dnsrecords

import (
	"encoding/base64"
	"encoding/json"

	"github.com/miekg/dns"
)

// algorithmNames maps IANA DNSSEC algorithm numbers to their display
// name. Unlisted values format as "Unknown (N)" via AlgorithmName.
var algorithmNames = map[uint8]string{
	1:  "RSA/MD5",
	3:  "DSA/SHA1",
	5:  "RSA/SHA-1",
	6:  "DSA-NSEC3-SHA1",
	7:  "RSASHA1-NSEC3-SHA1",
	8:  "RSA/SHA-256",
	10: "RSA/SHA-512",
	12: "GOST R 34.10-2001",
	13: "ECDSA P-256/SHA-256",
	14: "ECDSA P-384/SHA-384",
	15: "Ed25519",
	16: "Ed448",
}

// AlgorithmName returns the display name for a DNSSEC algorithm number,
// per spec §4.1 "Display name tables".
func AlgorithmName(algorithm uint8) string {
	if name, ok := algorithmNames[algorithm]; ok {
		return name
	}
	return unknownName(algorithm)
}

// DNSKeyInfo is the canonical internal representation of a DNSKEY
// record, with all derived fields (key tag, key length, algorithm name,
// KSK/ZSK role) pre-computed per spec §4.1/§3.
type DNSKeyInfo struct {
	Flags         uint16 `json:"flags"`
	Protocol      uint8  `json:"protocol"`
	Algorithm     uint8  `json:"algorithm"`
	AlgorithmName string `json:"algorithm_name"`
	KeyTag        uint16 `json:"key_tag"`
	KeyData       string `json:"key_data"`
	KeyLength     int    `json:"key_length"`
}

// IsKSK reports whether the SEP bit (flags & 0x0001) is set.
func (k DNSKeyInfo) IsKSK() bool { return k.Flags&0x0001 != 0 }

// IsZSK is the complement of IsKSK.
func (k DNSKeyInfo) IsZSK() bool { return !k.IsKSK() }

// MarshalJSON renders k with the is_ksk/is_zsk derived fields spec §6
// "JSON export" lists for DNSKEYs alongside the stored fields, the same
// way ValidationStatus.MarshalJSON attaches its own derived symbol/color.
func (k DNSKeyInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Flags         uint16 `json:"flags"`
		Protocol      uint8  `json:"protocol"`
		Algorithm     uint8  `json:"algorithm"`
		AlgorithmName string `json:"algorithm_name"`
		KeyTag        uint16 `json:"key_tag"`
		KeyLength     int    `json:"key_length"`
		IsKSK         bool   `json:"is_ksk"`
		IsZSK         bool   `json:"is_zsk"`
		KeyData       string `json:"key_data"`
	}{
		Flags:         k.Flags,
		Protocol:      k.Protocol,
		Algorithm:     k.Algorithm,
		AlgorithmName: k.AlgorithmName,
		KeyTag:        k.KeyTag,
		KeyLength:     k.KeyLength,
		IsKSK:         k.IsKSK(),
		IsZSK:         k.IsZSK(),
		KeyData:       k.KeyData,
	})
}

// NewDNSKeyInfo builds a DNSKeyInfo from a parsed DNSKEY resource
// record. The key tag is delegated to miekg/dns's own RFC 4034
// Appendix B.1 implementation (dns.DNSKEY.KeyTag) rather than
// reimplemented, since the library already carries it correctly tested
// against the RFC's reference algorithm.
func NewDNSKeyInfo(rr *dns.DNSKEY) DNSKeyInfo {
	keyBytes, _ := base64.StdEncoding.DecodeString(rr.PublicKey)

	return DNSKeyInfo{
		Flags:         rr.Flags,
		Protocol:      rr.Protocol,
		Algorithm:     rr.Algorithm,
		AlgorithmName: AlgorithmName(rr.Algorithm),
		KeyTag:        rr.KeyTag(),
		KeyData:       rr.PublicKey,
		KeyLength:     estimateKeyLength(rr.Algorithm, keyBytes),
	}
}

// estimateKeyLength implements spec §4.1 "Key length estimation".
//
// RSA-family algorithms encode the exponent length in the leading
// byte(s) of the public key: a nonzero leading byte is the exponent
// length directly; a leading zero byte is followed by a 16-bit
// big-endian exponent length. The remaining bytes are the modulus.
// ECDSA/EdDSA key sizes are fixed by curve and don't need parsing.
func estimateKeyLength(algorithm uint8, key []byte) int {
	switch algorithm {
	case 1, 5, 7, 8, 10: // RSA-family
		return estimateRSAModulusBits(key)
	case 13:
		return 256 // ECDSA P-256
	case 14:
		return 384 // ECDSA P-384
	case 15:
		return 256 // Ed25519
	case 16:
		return 448 // Ed448
	default:
		return len(key) * 8
	}
}

func estimateRSAModulusBits(key []byte) int {
	if len(key) < 3 {
		return len(key) * 8
	}

	if key[0] != 0 {
		expLen := int(key[0])
		return (len(key) - 1 - expLen) * 8
	}

	expLen := int(key[1])<<8 | int(key[2])
	return (len(key) - 3 - expLen) * 8
}
