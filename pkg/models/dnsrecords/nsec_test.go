package dnsrecords

import (
	"reflect"
	"testing"

	"github.com/miekg/dns"
)

func TestNewNSECInfo(t *testing.T) {
	rr := &dns.NSEC{
		Hdr:        dns.RR_Header{Name: "example.", Rrtype: dns.TypeNSEC, Class: dns.ClassINET},
		NextDomain: "www.example.",
		TypeBitMap: []uint16{dns.TypeA, dns.TypeRRSIG, dns.TypeNSEC},
	}

	info := NewNSECInfo(rr)

	if info.RecordType != "NSEC" {
		t.Errorf("RecordType = %s, want NSEC", info.RecordType)
	}
	if info.NextDomain != "www.example." {
		t.Errorf("NextDomain = %s, want www.example.", info.NextDomain)
	}
	want := []string{"A", "RRSIG", "NSEC"}
	if !reflect.DeepEqual(info.TypesCovered, want) {
		t.Errorf("TypesCovered = %v, want %v", info.TypesCovered, want)
	}
}

func TestNewNSEC3Info(t *testing.T) {
	rr := &dns.NSEC3{
		Hdr:        dns.RR_Header{Name: "q9s8t....example.", Rrtype: dns.TypeNSEC3, Class: dns.ClassINET},
		Hash:       1,
		Flags:      0,
		Iterations: 10,
		SaltLength: 2,
		Salt:       "AABB",
		NextDomain: "r1b2c3d4",
		TypeBitMap: []uint16{dns.TypeA},
	}

	info := NewNSEC3Info(rr)

	if info.RecordType != "NSEC3" {
		t.Errorf("RecordType = %s, want NSEC3", info.RecordType)
	}
	if info.HashAlgorithm != 1 {
		t.Errorf("HashAlgorithm = %d, want 1", info.HashAlgorithm)
	}
	if info.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10", info.Iterations)
	}
	if info.NextDomain != "r1b2c3d4" {
		t.Errorf("NextDomain = %s, want r1b2c3d4", info.NextDomain)
	}
}
