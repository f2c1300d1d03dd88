package models

import (
	"testing"

	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models/dnsrecords"
)

func TestZoneInfoIsRoot(t *testing.T) {
	root := NewZoneInfo(".", "")
	if !root.IsRoot() {
		t.Errorf("expected root zone to report IsRoot() true")
	}

	child := NewZoneInfo("example.", ".")
	if child.IsRoot() {
		t.Errorf("expected non-root zone to report IsRoot() false")
	}
	if child.Parent != "." {
		t.Errorf("Parent = %q, want \".\"", child.Parent)
	}
}

func TestZoneInfoKSKsAndDNSKeyByTag(t *testing.T) {
	z := NewZoneInfo("example.", ".")
	z.DNSKeys = []dnsrecords.DNSKeyInfo{
		{Flags: 257, KeyTag: 1},
		{Flags: 256, KeyTag: 2},
	}

	ksks := z.KSKs()
	if len(ksks) != 1 || ksks[0].KeyTag != 1 {
		t.Errorf("expected exactly one KSK with tag 1, got %+v", ksks)
	}

	if _, ok := z.DNSKeyByTag(2); !ok {
		t.Errorf("expected to find DNSKEY with tag 2")
	}
	if _, ok := z.DNSKeyByTag(99); ok {
		t.Errorf("did not expect to find DNSKEY with tag 99")
	}
}

func TestZoneInfoHasDNSSEC(t *testing.T) {
	z := NewZoneInfo("unsigned.example.", "example.")
	if z.HasDNSSEC() {
		t.Errorf("expected HasDNSSEC() false for a zone with no DNSSEC material")
	}

	z.DSRecords = []dnsrecords.DSInfo{{KeyTag: 1}}
	if !z.HasDNSSEC() {
		t.Errorf("expected HasDNSSEC() true once DS records are present")
	}
}

func TestZoneInfoDNSKeyRRSIGs(t *testing.T) {
	z := NewZoneInfo("example.", ".")
	z.RRSIGs = []dnsrecords.RRSIGInfo{
		{TypeCovered: "DNSKEY", KeyTag: 1},
		{TypeCovered: "SOA", KeyTag: 2},
	}
	covered := z.DNSKeyRRSIGs()
	if len(covered) != 1 || covered[0].KeyTag != 1 {
		t.Errorf("expected exactly one DNSKEY RRSIG, got %+v", covered)
	}
}
