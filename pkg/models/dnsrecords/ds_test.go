package dnsrecords

import (
	"testing"

	"github.com/miekg/dns"
)

func TestNewDSInfoUppercasesDigest(t *testing.T) {
	rr := &dns.DS{
		Hdr:        dns.RR_Header{Name: ".", Rrtype: dns.TypeDS, Class: dns.ClassINET},
		KeyTag:     20326,
		Algorithm:  8,
		DigestType: 2,
		Digest:     "e06d44b80b8f1d39a95c0b0d7c65d08458e880409bbc683457104237c7f8ec8",
	}

	info := NewDSInfo(rr)

	if info.Digest != "E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8" {
		t.Errorf("Digest not upper-cased: %s", info.Digest)
	}
	if info.DigestTypeName != "SHA-256" {
		t.Errorf("DigestTypeName = %s, want SHA-256", info.DigestTypeName)
	}
	if info.AlgorithmName != "RSA/SHA-256" {
		t.Errorf("AlgorithmName = %s, want RSA/SHA-256", info.AlgorithmName)
	}
	if info.ValidatesKey != 0 {
		t.Errorf("ValidatesKey should start unset, got %d", info.ValidatesKey)
	}
}

func TestDigestTypeNameUnknown(t *testing.T) {
	if got := DigestTypeName(9); got != "Unknown (9)" {
		t.Errorf("DigestTypeName(9) = %q, want Unknown (9)", got)
	}
}
