package models

import (
	"time"

	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models/dnsrecords"
)

// TrustChain is the immutable result of one chain-of-trust validation
// run: a root-first ordered sequence of ZoneInfo values plus the
// aggregated chain-level status. Once returned from a validation call
// only additive consumer operations (rendering, export) are permitted;
// no field is mutated afterwards.
type TrustChain struct {
	TargetDomain    string
	QueryTime       time.Time
	Zones           []*ZoneInfo
	OverallStatus   dnsrecords.ValidationStatus
	OverallReason   string
	ResolverUsed    []string
	QueryDurationMs int64
}

// NewTrustChain returns an empty TrustChain for targetDomain, stamped
// with the current instant as its query time.
func NewTrustChain(targetDomain string, resolverUsed []string) *TrustChain {
	return &TrustChain{
		TargetDomain:  targetDomain,
		QueryTime:     time.Now().UTC(),
		ResolverUsed:  resolverUsed,
		OverallStatus: dnsrecords.StatusUnknown,
	}
}

// ChainPath returns the ordered zone names, root first.
func (c *TrustChain) ChainPath() []string {
	path := make([]string, len(c.Zones))
	for i, z := range c.Zones {
		path[i] = z.Name
	}
	return path
}

// ZoneByName returns the zone with the given name, if present.
func (c *TrustChain) ZoneByName(name string) (*ZoneInfo, bool) {
	for _, z := range c.Zones {
		if z.Name == name {
			return z, true
		}
	}
	return nil, false
}

// Finalize computes the chain-level status from the zones' current
// statuses, whether the walk reached every zone or halted at a BOGUS
// one. If every zone is SECURE the chain is
// SECURE; otherwise the first non-SECURE zone encountered, root first,
// determines both the chain status and its reason.
func (c *TrustChain) Finalize() {
	for _, z := range c.Zones {
		if z.Status != dnsrecords.StatusSecure {
			c.OverallStatus = z.Status
			c.OverallReason = "Chain breaks/issue at " + z.Name + ": " + z.StatusReason
			return
		}
	}
	c.OverallStatus = dnsrecords.StatusSecure
	c.OverallReason = "chain validated"
}

// trustChainJSON mirrors the metadata/overall_status/chain_path/zones
// shape of the JSON export schema.
type trustChainJSON struct {
	Metadata      metadataJSON                `json:"metadata"`
	OverallStatus dnsrecords.ValidationStatus `json:"overall_status"`
	OverallReason string                      `json:"overall_reason"`
	ChainPath     []string                    `json:"chain_path"`
	Zones         []interface{}               `json:"zones"`
}

type metadataJSON struct {
	TargetDomain    string   `json:"target_domain"`
	QueryTime       string   `json:"query_time"`
	QueryDurationMs int64    `json:"query_duration_ms"`
	ResolverUsed    []string `json:"resolver_used"`
	ZoneCount       int      `json:"zone_count"`
}

// ExportView renders c into the shape used by the JSON export schema.
func (c *TrustChain) ExportView() interface{} {
	zones := make([]interface{}, len(c.Zones))
	for i, z := range c.Zones {
		zones[i] = z.ExportView()
	}
	return trustChainJSON{
		Metadata: metadataJSON{
			TargetDomain:    c.TargetDomain,
			QueryTime:       c.QueryTime.Format("2006-01-02T15:04:05Z"),
			QueryDurationMs: c.QueryDurationMs,
			ResolverUsed:    c.ResolverUsed,
			ZoneCount:       len(c.Zones),
		},
		OverallStatus: c.OverallStatus,
		OverallReason: c.OverallReason,
		ChainPath:     c.ChainPath(),
		Zones:         zones,
	}
}
