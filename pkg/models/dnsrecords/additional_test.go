package dnsrecords

import (
	"testing"

	"github.com/miekg/dns"
)

func TestNewAdditionalRecordClassifiesSPF(t *testing.T) {
	rr := &dns.TXT{
		Hdr: dns.RR_Header{Name: "example.", Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 300},
		Txt: []string{"v=spf1 include:_spf.example.com ~all"},
	}

	rec := NewAdditionalRecord(rr, false)
	if rec == nil {
		t.Fatalf("expected non-nil record")
	}
	if rec.RecordType != "SPF" {
		t.Errorf("RecordType = %s, want SPF", rec.RecordType)
	}
}

func TestNewAdditionalRecordClassifiesDMARCOnlyForDMARCQuery(t *testing.T) {
	rr := &dns.TXT{
		Hdr: dns.RR_Header{Name: "_dmarc.example.", Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 300},
		Txt: []string{"v=DMARC1; p=reject;"},
	}

	notDMARC := NewAdditionalRecord(rr, false)
	if notDMARC.RecordType != "TXT" {
		t.Errorf("RecordType = %s, want TXT when not a DMARC query", notDMARC.RecordType)
	}

	asDMARC := NewAdditionalRecord(rr, true)
	if asDMARC.RecordType != "DMARC" {
		t.Errorf("RecordType = %s, want DMARC", asDMARC.RecordType)
	}
}

func TestNewAdditionalRecordSOA(t *testing.T) {
	rr := &dns.SOA{
		Hdr:     dns.RR_Header{Name: "example.", Rrtype: dns.TypeSOA, Class: dns.ClassINET, Ttl: 86400},
		Ns:      "ns1.example.",
		Mbox:    "hostmaster.example.",
		Serial:  2026073001,
		Refresh: 7200,
		Retry:   3600,
		Expire:  1209600,
		Minttl:  3600,
	}

	rec := NewAdditionalRecord(rr, false)
	if rec.RecordType != "SOA" {
		t.Errorf("RecordType = %s, want SOA", rec.RecordType)
	}
	want := "ns1.example. hostmaster.example. 2026073001 7200 3600 1209600 3600"
	if rec.Value != want {
		t.Errorf("Value = %q, want %q", rec.Value, want)
	}
}

func TestNewAdditionalRecordUnsupportedTypeReturnsNil(t *testing.T) {
	rr := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: "example.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET},
		Target: "other.example.",
	}
	if rec := NewAdditionalRecord(rr, false); rec != nil {
		t.Errorf("expected nil for unsupported record type, got %+v", rec)
	}
}
