package dnsrecords

import (
	"testing"
	"time"

	"github.com/miekg/dns"
)

func TestNewRRSIGInfoConvertsTimestamps(t *testing.T) {
	rr := &dns.RRSIG{
		Hdr:         dns.RR_Header{Name: "example.", Rrtype: dns.TypeRRSIG, Class: dns.ClassINET},
		TypeCovered: dns.TypeDNSKEY,
		Algorithm:   8,
		Labels:      2,
		OrigTtl:     3600,
		Inception:   1703676034,
		Expiration:  1704540034,
		KeyTag:      30640,
		SignerName:  "example.",
		Signature:   "abcd",
	}

	info := NewRRSIGInfo(rr)

	if info.TypeCovered != "DNSKEY" {
		t.Errorf("TypeCovered = %s, want DNSKEY", info.TypeCovered)
	}
	if info.Inception.Unix() != 1703676034 {
		t.Errorf("Inception not preserved: %v", info.Inception)
	}
	if info.Expiration.Unix() != 1704540034 {
		t.Errorf("Expiration not preserved: %v", info.Expiration)
	}
	if info.Inception.Location() != time.UTC {
		t.Errorf("Inception must be UTC")
	}
}

// TestRRSIGBoundaryInclusive matches spec §8 "Boundary behaviours":
// expiration exactly now is expired; inception exactly now is valid.
func TestRRSIGBoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	info := RRSIGInfo{
		Inception:  now,
		Expiration: now,
	}

	if !info.IsExpired(now) {
		t.Errorf("expiration == now must be classified as expired")
	}
	if info.IsNotYetValid(now) {
		t.Errorf("inception == now must already be valid")
	}
}

func TestRRSIGDaysUntilExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	info := RRSIGInfo{Expiration: now.Add(30 * 24 * time.Hour)}

	if got := info.DaysUntilExpiry(now); got != 30 {
		t.Errorf("DaysUntilExpiry = %d, want 30", got)
	}

	expired := RRSIGInfo{Expiration: now.Add(-1 * 24 * time.Hour)}
	if got := expired.DaysUntilExpiry(now); got >= 0 {
		t.Errorf("DaysUntilExpiry for an expired signature should be negative, got %d", got)
	}
}
