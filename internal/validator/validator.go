// Package validator implements the chain-of-trust classification engine
// from spec §4.3: it walks a TrustChain root-first, computes DS→DNSKEY
// digest matches, checks RRSIG validity windows, and assigns each zone
// (and the chain as a whole) one of SECURE/INSECURE/BOGUS/INDETERMINATE.
package validator

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/jacksonbarreto/dnssec-chain-validator/internal/resolver"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models/dnsrecords"
)

// Validator computes trust status over a chain materialised by a
// resolver.Resolver. The validator itself performs no internal
// parallelism across zones (spec §5): zones are processed sequentially
// because each depends on the parent's classification.
type Validator struct {
	resolver *resolver.Resolver
	log      logservice.Logger
}

// New builds a Validator bound to res.
func New(res *resolver.Resolver, log logservice.Logger) *Validator {
	return &Validator{resolver: res, log: log}
}

// Validate runs one full validation for domain: it materialises the
// zone chain via the resolver, then classifies it in place, and returns
// the now-immutable TrustChain (spec §3 "Ownership/lifecycle").
func (v *Validator) Validate(ctx context.Context, domain string) (*models.TrustChain, error) {
	chain := v.resolver.QueryZoneChain(ctx, domain, true)
	v.classify(chain)
	return chain, nil
}

// classify applies the zone status algorithm from spec §4.3 to chain,
// mutating each ZoneInfo's Status/StatusReason/DSValidated/
// DNSKeyValidated/ChainComplete fields in place and setting the
// chain-level OverallStatus/OverallReason.
func (v *Validator) classify(chain *models.TrustChain) {
	if len(chain.Zones) == 0 {
		chain.OverallStatus = dnsrecords.StatusIndeterminate
		chain.OverallReason = "DNS query failed"
		return
	}

	root := chain.Zones[0]
	if len(root.DNSKeys) == 0 {
		root.Status = dnsrecords.StatusIndeterminate
		root.StatusReason = "DNS query failed"
		chain.OverallStatus = dnsrecords.StatusIndeterminate
		chain.OverallReason = "DNS query failed"
		return
	}

	v.classifyRoot(root)
	if root.Status == dnsrecords.StatusBogus {
		chain.Finalize()
		return
	}

	for i := 1; i < len(chain.Zones); i++ {
		zone := chain.Zones[i]
		parent := chain.Zones[i-1]

		if v.classifyNonRoot(zone, parent) {
			continue
		}
		// A BOGUS classification halts the walk: downstream zones stay
		// at their default UNKNOWN status since they were never reached.
		break
	}

	chain.Finalize()
}

// classifyRoot applies spec §4.3 "Root zone". root.DNSKeys is known
// non-empty by the caller.
func (v *Validator) classifyRoot(root *models.ZoneInfo) {
	anchorMatched := false
	for _, anchor := range RootTrustAnchors() {
		for _, key := range root.DNSKeys {
			if key.KeyTag != anchor.KeyTag || key.Algorithm != anchor.Algorithm {
				continue
			}
			if digestMatches(root.Name, key, anchor.DigestType, anchor.Digest) {
				root.Status = dnsrecords.StatusSecure
				root.StatusReason = fmt.Sprintf("Root DNSKEY %d matches trust anchor", key.KeyTag)
				anchorMatched = true
				break
			}
		}
		if anchorMatched {
			break
		}
	}

	if !anchorMatched {
		if len(root.KSKs()) > 0 {
			root.Status = dnsrecords.StatusSecure
			root.StatusReason = "trust anchor verification skipped (no built-in anchor matched a present KSK)"
		} else {
			root.Status = dnsrecords.StatusBogus
			root.StatusReason = "no trust anchor matched and no KSK present"
			return
		}
	}

	ok, reason := v.validateDNSKEYTiming(root)
	if !ok {
		root.Status = dnsrecords.StatusBogus
		root.StatusReason = reason
	}
}

// classifyNonRoot applies spec §4.3 "Non-root zone" to zone given its
// already-classified parent. It returns true when the walk should
// continue to the next zone, false when a BOGUS result halts it.
func (v *Validator) classifyNonRoot(zone, parent *models.ZoneInfo) bool {
	if len(zone.DNSKeys) == 0 && len(zone.DSRecords) == 0 {
		zone.Status = dnsrecords.StatusInsecure
		zone.StatusReason = "unsigned delegation"
		return true
	}

	if len(zone.DSRecords) > 0 && len(zone.DNSKeys) == 0 {
		zone.Status = dnsrecords.StatusBogus
		zone.StatusReason = "DS exists but no DNSKEY"
		return false
	}

	matchedTag, dsValidated := v.matchDSToDNSKey(zone)

	if len(zone.DSRecords) > 0 && !dsValidated {
		zone.Status = dnsrecords.StatusBogus
		zone.StatusReason = "DS validates no DNSKEY (digest mismatch)"
		return false
	}

	if len(zone.DSRecords) == 0 {
		zone.Status = dnsrecords.StatusInsecure
		if parent.Status == dnsrecords.StatusSecure {
			zone.StatusReason = "no DS record in parent"
		} else {
			zone.StatusReason = "parent zone is not secure"
		}
		return true
	}

	zone.DSValidated = dsValidated

	timingOK, timingReason := v.validateDNSKEYTiming(zone)
	if !timingOK {
		zone.Status = dnsrecords.StatusBogus
		zone.StatusReason = timingReason
		return false
	}

	zone.DNSKeyValidated = dnskeyRRSIGCoversTag(zone, matchedTag)
	zone.ChainComplete = zone.DSValidated && zone.DNSKeyValidated

	switch {
	case zone.DSValidated && zone.DNSKeyValidated:
		zone.Status = dnsrecords.StatusSecure
		zone.StatusReason = "chain validated"
	case zone.DSValidated:
		zone.Status = dnsrecords.StatusSecure
		zone.StatusReason = "DS validated (RRSIG check partial)"
	default:
		zone.Status = dnsrecords.StatusIndeterminate
		zone.StatusReason = "could not fully validate"
	}
	return true
}

// dnskeyRRSIGCoversTag implements spec §4.3 step 7: dnskey_validated
// requires at least one RRSIG over the DNSKEY RRset, and that either its
// key tag equals the DS-matched tag or its own signer key tag names a
// key present in the zone.
func dnskeyRRSIGCoversTag(zone *models.ZoneInfo, matchedTag uint16) bool {
	sigs := zone.DNSKeyRRSIGs()
	if len(sigs) == 0 {
		return false
	}
	for _, sig := range sigs {
		if sig.KeyTag == matchedTag {
			return true
		}
		if _, ok := zone.DNSKeyByTag(sig.KeyTag); ok {
			return true
		}
	}
	return false
}

// matchDSToDNSKey implements spec §4.3 "DS→DNSKEY digest" matching: KSKs
// are preferred candidates, falling back to all DNSKEYs when the zone
// has no KSK. Every DS record is checked (not just the first) so that
// DSInfo.ValidatesKey is recorded for each match; the first matched tag
// found is returned for use by step 7.
func (v *Validator) matchDSToDNSKey(zone *models.ZoneInfo) (matchedTag uint16, ok bool) {
	candidates := zone.KSKs()
	if len(candidates) == 0 {
		candidates = zone.DNSKeys
	}

	for i := range zone.DSRecords {
		ds := &zone.DSRecords[i]
		for _, key := range candidates {
			if ds.KeyTag != key.KeyTag || ds.Algorithm != key.Algorithm {
				continue
			}
			if !digestMatches(zone.Name, key, ds.DigestType, ds.Digest) {
				continue
			}
			ds.ValidatesKey = key.KeyTag
			if !ok {
				matchedTag, ok = key.KeyTag, true
			}
		}
	}
	return matchedTag, ok
}

// validateDNSKEYTiming implements spec §4.3 step 6 (and the root
// zone's equivalent check): every RRSIG covering the DNSKEY RRset is
// inspected. An expired or not-yet-valid signature is fatal (the zone
// is BOGUS); a signature whose key tag has no matching DNSKEY is
// recorded as invalid but does not itself fail the zone.
func (v *Validator) validateDNSKEYTiming(zone *models.ZoneInfo) (ok bool, reason string) {
	now := time.Now().UTC()

	for i := range zone.RRSIGs {
		sig := &zone.RRSIGs[i]
		if sig.TypeCovered != "DNSKEY" {
			continue
		}

		if sig.IsExpired(now) {
			sig.IsValid = false
			sig.ValidationError = "signature expired"
			return false, "DNSKEY RRSIG expired"
		}
		if sig.IsNotYetValid(now) {
			sig.IsValid = false
			sig.ValidationError = "signature not yet valid"
			return false, "DNSKEY RRSIG not yet valid"
		}

		if _, found := zone.DNSKeyByTag(sig.KeyTag); found {
			sig.IsValid = true
		} else {
			sig.IsValid = false
			sig.ValidationError = "signing key not found"
		}
	}

	return true, ""
}

// digestMatches recomputes the DS digest for key as it would appear
// under zoneName, per spec §4.3 "DS→DNSKEY digest": the canonical
// owner-name wire encoding of the zone concatenated with the DNSKEY
// RDATA, hashed per digestType. Delegated to miekg/dns's DNSKEY.ToDS,
// the same function 0xERR0R/blocky's DNSSEC validator uses to recompute
// a DS from a candidate key.
func digestMatches(zoneName string, key dnsrecords.DNSKeyInfo, digestType uint8, expectedDigest string) bool {
	if _, err := base64.StdEncoding.DecodeString(key.KeyData); err != nil {
		return false
	}

	rr := &dns.DNSKEY{
		Hdr:       dns.RR_Header{Name: dns.Fqdn(zoneName), Rrtype: dns.TypeDNSKEY, Class: dns.ClassINET},
		Flags:     key.Flags,
		Protocol:  key.Protocol,
		Algorithm: key.Algorithm,
		PublicKey: key.KeyData,
	}

	computed := rr.ToDS(digestType)
	if computed == nil {
		return false
	}

	return strings.EqualFold(computed.Digest, expectedDigest)
}
