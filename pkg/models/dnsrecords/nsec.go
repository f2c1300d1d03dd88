package dnsrecords

import "github.com/miekg/dns"

// NSECInfo captures an authenticated denial-of-existence record for
// display purposes only — per spec §1 "Non-goals" this engine does not
// use NSEC/NSEC3 to prove non-existence, it just parses them.
type NSECInfo struct {
	RecordType   string // "NSEC" or "NSEC3"
	NextDomain   string
	TypesCovered []string

	// NSEC3-only fields.
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          string
}

// NewNSECInfo builds an NSECInfo from an NSEC record.
func NewNSECInfo(rr *dns.NSEC) NSECInfo {
	return NSECInfo{
		RecordType:   "NSEC",
		NextDomain:   rr.NextDomain,
		TypesCovered: typeBitMapToStrings(rr.TypeBitMap),
	}
}

// NewNSEC3Info builds an NSECInfo from an NSEC3 record, whose
// NextDomain is a base32-encoded hash rather than a plain name.
func NewNSEC3Info(rr *dns.NSEC3) NSECInfo {
	return NSECInfo{
		RecordType:    "NSEC3",
		NextDomain:    rr.NextDomain,
		TypesCovered:  typeBitMapToStrings(rr.TypeBitMap),
		HashAlgorithm: rr.Hash,
		Flags:         rr.Flags,
		Iterations:    rr.Iterations,
		Salt:          rr.Salt,
	}
}

func typeBitMapToStrings(types []uint16) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, dns.TypeToString[t])
	}
	return names
}
