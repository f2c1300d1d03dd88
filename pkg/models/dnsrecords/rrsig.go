package dnsrecords

import (
	"encoding/json"
	"time"

	"github.com/miekg/dns"
)

// rrsigTimeLayout formats RRSIG inception/expiration the same way the
// rest of the export schema renders UTC instants (see
// pkg/models/chain.go's metadataJSON.QueryTime).
const rrsigTimeLayout = "2006-01-02T15:04:05Z"

// RRSIGInfo is the canonical internal representation of an RRSIG
// record. IsValid/ValidationError are set by the validator after
// checking the signature's validity window (spec does not require
// cryptographic verification of the signature bytes themselves, only
// DS/DNSKEY digest matching and timing — see spec.md §1 "Non-goals").
type RRSIGInfo struct {
	TypeCovered   string    `json:"type_covered"`
	Algorithm     uint8     `json:"algorithm"`
	AlgorithmName string    `json:"algorithm_name"`
	Labels        uint8     `json:"labels"`
	OriginalTTL   uint32    `json:"original_ttl"`
	Inception     time.Time `json:"inception"`
	Expiration    time.Time `json:"expiration"`
	KeyTag        uint16    `json:"key_tag"`
	SignerName    string    `json:"signer_name"`
	Signature     string    `json:"signature"`

	IsValid         bool   `json:"is_valid"`
	ValidationError string `json:"validation_error,omitempty"`
}

// NewRRSIGInfo builds an RRSIGInfo from a parsed RRSIG resource record,
// converting the wire-format 32-bit inception/expiration fields
// (seconds since the Unix epoch) into absolute UTC instants. Per spec
// §4.1 "Timestamps", wraparound past the year 2106 is not handled.
func NewRRSIGInfo(rr *dns.RRSIG) RRSIGInfo {
	return RRSIGInfo{
		TypeCovered:   dns.TypeToString[rr.TypeCovered],
		Algorithm:     rr.Algorithm,
		AlgorithmName: AlgorithmName(rr.Algorithm),
		Labels:        rr.Labels,
		OriginalTTL:   rr.OrigTtl,
		Inception:     time.Unix(int64(rr.Inception), 0).UTC(),
		Expiration:    time.Unix(int64(rr.Expiration), 0).UTC(),
		KeyTag:        rr.KeyTag,
		SignerName:    rr.SignerName,
		Signature:     rr.Signature,
	}
}

// IsExpired reports whether now is at or past the signature's
// expiration instant. The boundary is inclusive: expiration == now
// counts as expired, per spec §8 "Boundary behaviours".
func (r RRSIGInfo) IsExpired(now time.Time) bool {
	return !now.Before(r.Expiration)
}

// IsNotYetValid reports whether now is strictly before the signature's
// inception instant. The boundary is inclusive on the other side:
// inception == now is already valid.
func (r RRSIGInfo) IsNotYetValid(now time.Time) bool {
	return now.Before(r.Inception)
}

// DaysUntilExpiry returns the number of whole days between now and
// expiration; negative once the signature has expired.
func (r RRSIGInfo) DaysUntilExpiry(now time.Time) int {
	return int(r.Expiration.Sub(now).Hours() / 24)
}

// MarshalJSON renders r with the is_expired/days_until_expiry derived
// fields spec §6 "JSON export" lists for RRSIGs alongside the stored
// fields, the same way ValidationStatus.MarshalJSON attaches its own
// derived symbol/color.
func (r RRSIGInfo) MarshalJSON() ([]byte, error) {
	now := time.Now().UTC()
	return json.Marshal(struct {
		TypeCovered     string `json:"type_covered"`
		Algorithm       uint8  `json:"algorithm"`
		AlgorithmName   string `json:"algorithm_name"`
		Labels          uint8  `json:"labels"`
		OriginalTTL     uint32 `json:"original_ttl"`
		Inception       string `json:"inception"`
		Expiration      string `json:"expiration"`
		KeyTag          uint16 `json:"key_tag"`
		SignerName      string `json:"signer_name"`
		Signature       string `json:"signature"`
		IsValid         bool   `json:"is_valid"`
		ValidationError string `json:"validation_error,omitempty"`
		IsExpired       bool   `json:"is_expired"`
		IsNotYetValid   bool   `json:"is_not_yet_valid"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
	}{
		TypeCovered:     r.TypeCovered,
		Algorithm:       r.Algorithm,
		AlgorithmName:   r.AlgorithmName,
		Labels:          r.Labels,
		OriginalTTL:     r.OriginalTTL,
		Inception:       r.Inception.Format(rrsigTimeLayout),
		Expiration:      r.Expiration.Format(rrsigTimeLayout),
		KeyTag:          r.KeyTag,
		SignerName:      r.SignerName,
		Signature:       r.Signature,
		IsValid:         r.IsValid,
		ValidationError: r.ValidationError,
		IsExpired:       r.IsExpired(now),
		IsNotYetValid:   r.IsNotYetValid(now),
		DaysUntilExpiry: r.DaysUntilExpiry(now),
	})
}
