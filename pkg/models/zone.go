package models

import "github.com/jacksonbarreto/dnssec-chain-validator/pkg/models/dnsrecords"

// ZoneInfo is one zone in a TrustChain, from the root down to the
// target domain. Zones reference their parent by name rather than by
// pointer: parent lookup is a walk over the chain's zone list, which
// keeps a ZoneInfo trivially serialisable and avoids ownership cycles.
type ZoneInfo struct {
	Name         string
	Parent       string // empty for the root zone
	Status       dnsrecords.ValidationStatus
	StatusReason string

	DNSKeys           []dnsrecords.DNSKeyInfo
	DSRecords         []dnsrecords.DSInfo
	RRSIGs            []dnsrecords.RRSIGInfo
	NSECRecords       []dnsrecords.NSECInfo
	AdditionalRecords []dnsrecords.AdditionalRecord

	DSValidated     bool
	DNSKeyValidated bool
	ChainComplete   bool

	Consistency *ConsistencyResult
}

// NewZoneInfo returns an unvalidated ZoneInfo for name, linked to parent
// by name. Use "" for the root zone's parent.
func NewZoneInfo(name, parent string) *ZoneInfo {
	return &ZoneInfo{
		Name:   name,
		Parent: parent,
		Status: dnsrecords.StatusUnknown,
	}
}

// IsRoot reports whether z is the root zone of its chain.
func (z *ZoneInfo) IsRoot() bool {
	return z.Name == "."
}

// HasDNSSEC reports whether any DNSSEC material was returned for this
// zone at all (DNSKEYs, DS records or RRSIGs), independent of whether
// that material validated.
func (z *ZoneInfo) HasDNSSEC() bool {
	return len(z.DNSKeys) > 0 || len(z.DSRecords) > 0 || len(z.RRSIGs) > 0
}

// KSKs returns the subset of z.DNSKeys with the SEP bit set.
func (z *ZoneInfo) KSKs() []dnsrecords.DNSKeyInfo {
	var out []dnsrecords.DNSKeyInfo
	for _, k := range z.DNSKeys {
		if k.IsKSK() {
			out = append(out, k)
		}
	}
	return out
}

// DNSKeyByTag returns the DNSKEY in z with the given key tag, if any.
func (z *ZoneInfo) DNSKeyByTag(tag uint16) (dnsrecords.DNSKeyInfo, bool) {
	for _, k := range z.DNSKeys {
		if k.KeyTag == tag {
			return k, true
		}
	}
	return dnsrecords.DNSKeyInfo{}, false
}

// DNSKeyRRSIGs returns the RRSIGs in z covering the DNSKEY RRset.
func (z *ZoneInfo) DNSKeyRRSIGs() []dnsrecords.RRSIGInfo {
	var out []dnsrecords.RRSIGInfo
	for _, r := range z.RRSIGs {
		if r.TypeCovered == "DNSKEY" {
			out = append(out, r)
		}
	}
	return out
}

// zoneJSON mirrors the wire shape from the export schema: flags grouped
// together, status as its {value,symbol,color} object.
type zoneJSON struct {
	Name              string                      `json:"name"`
	Parent            string                      `json:"parent"`
	Status            dnsrecords.ValidationStatus `json:"status"`
	StatusReason      string                      `json:"status_reason"`
	Flags             zoneFlagsJSON               `json:"flags"`
	DNSKeys           []dnsrecords.DNSKeyInfo     `json:"dnskeys"`
	DSRecords         []dnsrecords.DSInfo         `json:"ds_records"`
	RRSIGs            []dnsrecords.RRSIGInfo      `json:"rrsigs"`
	AdditionalRecords []dnsrecords.AdditionalRecord `json:"additional_records"`
	Consistency       *ConsistencyResult          `json:"consistency,omitempty"`
}

type zoneFlagsJSON struct {
	HasDNSSEC       bool `json:"has_dnssec"`
	DSValidated     bool `json:"ds_validated"`
	DNSKeyValidated bool `json:"dnskey_validated"`
	ChainComplete   bool `json:"chain_complete"`
}

// ExportView renders z into the shape used by the JSON export schema.
func (z *ZoneInfo) ExportView() interface{} {
	return zoneJSON{
		Name:         z.Name,
		Parent:       z.Parent,
		Status:       z.Status,
		StatusReason: z.StatusReason,
		Flags: zoneFlagsJSON{
			HasDNSSEC:       z.HasDNSSEC(),
			DSValidated:     z.DSValidated,
			DNSKeyValidated: z.DNSKeyValidated,
			ChainComplete:   z.ChainComplete,
		},
		DNSKeys:           z.DNSKeys,
		DSRecords:         z.DSRecords,
		RRSIGs:            z.RRSIGs,
		AdditionalRecords: z.AdditionalRecords,
		Consistency:       z.Consistency,
	}
}
