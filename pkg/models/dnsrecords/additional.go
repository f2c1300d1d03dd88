package dnsrecords

import (
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// AdditionalRecord is a non-DNSSEC-critical record (SOA, NS, A, AAAA,
// MX, TXT) gathered for display alongside the trust chain, plus the
// SPF/DMARC records synthesised from TXT content per spec §3.
type AdditionalRecord struct {
	RecordType string     `json:"record_type"`
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	TTL        uint32     `json:"ttl"`
	IsSigned   bool       `json:"is_signed"`
	RRSIG      *RRSIGInfo `json:"rrsig,omitempty"`
}

// NewAdditionalRecord builds an AdditionalRecord from any supported RR,
// relabelling TXT records that look like SPF or DMARC policies per
// spec §3: "SPF/DMARC are synthesised from TXT content matching
// v=spf1 / v=dmarc1 (case-insensitive)". isDMARCQuery indicates the
// record was fetched from the _dmarc.<target> subdomain, matching the
// spec's requirement that only TXT records under that label are
// eligible for DMARC relabelling.
func NewAdditionalRecord(rr dns.RR, isDMARCQuery bool) *AdditionalRecord {
	header := rr.Header()
	rec := &AdditionalRecord{
		Name: header.Name,
		TTL:  header.Ttl,
	}

	switch v := rr.(type) {
	case *dns.SOA:
		rec.RecordType = "SOA"
		rec.Value = soaValue(v)
	case *dns.NS:
		rec.RecordType = "NS"
		rec.Value = v.Ns
	case *dns.A:
		rec.RecordType = "A"
		rec.Value = v.A.String()
	case *dns.AAAA:
		rec.RecordType = "AAAA"
		rec.Value = v.AAAA.String()
	case *dns.MX:
		rec.RecordType = "MX"
		rec.Value = v.Mx
	case *dns.TXT:
		rec.RecordType = "TXT"
		rec.Value = strings.Join(v.Txt, "")
		rec.RecordType = classifyTXT(rec.Value, isDMARCQuery)
	default:
		return nil
	}

	return rec
}

// classifyTXT relabels a TXT record as SPF or DMARC when its content
// matches the corresponding policy marker, case-insensitively.
func classifyTXT(value string, isDMARCQuery bool) string {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "v=spf1"):
		return "SPF"
	case isDMARCQuery && strings.Contains(lower, "v=dmarc1"):
		return "DMARC"
	default:
		return "TXT"
	}
}

func soaValue(soa *dns.SOA) string {
	u32 := func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
	return strings.Join([]string{
		soa.Ns, soa.Mbox,
		u32(soa.Serial), u32(soa.Refresh), u32(soa.Retry), u32(soa.Expire), u32(soa.Minttl),
	}, " ")
}
