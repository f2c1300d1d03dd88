package export

import (
	"fmt"
	"strings"

	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models"
)

// ToText renders chain into the human-readable multi-section report
// from spec §6 "Text export": a header followed by one block per zone
// listing its DNSKEYs, DS records, RRSIGs, and additional records.
func ToText(chain *models.TrustChain) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DNSSEC Chain of Trust Report\n")
	fmt.Fprintf(&b, "============================\n")
	fmt.Fprintf(&b, "Domain:           %s\n", chain.TargetDomain)
	fmt.Fprintf(&b, "Status:           %s %s\n", chain.OverallStatus.Symbol(), chain.OverallStatus.String())
	fmt.Fprintf(&b, "Reason:           %s\n", chain.OverallReason)
	fmt.Fprintf(&b, "Zone count:       %d\n", len(chain.Zones))
	fmt.Fprintf(&b, "Query duration:   %dms\n", chain.QueryDurationMs)
	fmt.Fprintf(&b, "Resolver used:    %s\n", strings.Join(chain.ResolverUsed, ", "))
	fmt.Fprintf(&b, "Query time:       %s\n\n", chain.QueryTime.Format("2006-01-02T15:04:05Z"))

	for _, zone := range chain.Zones {
		writeZoneBlock(&b, zone)
	}

	return b.String()
}

func writeZoneBlock(b *strings.Builder, zone *models.ZoneInfo) {
	fmt.Fprintf(b, "Zone: %s\n", zone.Name)
	fmt.Fprintf(b, "------%s\n", strings.Repeat("-", len(zone.Name)))
	fmt.Fprintf(b, "  Status: %s %s (%s)\n", zone.Status.Symbol(), zone.Status.String(), zone.StatusReason)

	if len(zone.DNSKeys) > 0 {
		fmt.Fprintf(b, "  DNSKEYs:\n")
		for _, k := range zone.DNSKeys {
			role := "ZSK"
			if k.IsKSK() {
				role = "KSK"
			}
			fmt.Fprintf(b, "    tag=%d type=%s algorithm=%s bits=%d\n", k.KeyTag, role, k.AlgorithmName, k.KeyLength)
		}
	}

	if len(zone.DSRecords) > 0 {
		fmt.Fprintf(b, "  DS records:\n")
		for _, d := range zone.DSRecords {
			fmt.Fprintf(b, "    tag=%d algorithm=%s digestType=%s digest=%s\n", d.KeyTag, d.AlgorithmName, d.DigestTypeName, d.Digest)
		}
	}

	if len(zone.RRSIGs) > 0 {
		fmt.Fprintf(b, "  RRSIGs:\n")
		for _, r := range zone.RRSIGs {
			fmt.Fprintf(b, "    covers=%s tag=%d inception=%s expiration=%s valid=%t\n",
				r.TypeCovered, r.KeyTag,
				r.Inception.Format("2006-01-02T15:04:05Z"),
				r.Expiration.Format("2006-01-02T15:04:05Z"),
				r.IsValid)
		}
	}

	if len(zone.AdditionalRecords) > 0 {
		fmt.Fprintf(b, "  Additional records:\n")
		for _, a := range zone.AdditionalRecords {
			fmt.Fprintf(b, "    %s %s = %s (ttl=%d)\n", a.RecordType, a.Name, a.Value, a.TTL)
		}
	}

	if zone.Consistency != nil {
		fmt.Fprintf(b, "  Consistency: %d/%d responded, consistent=%t\n",
			zone.Consistency.NameserversResponded, zone.Consistency.NameserversQueried, zone.Consistency.IsConsistent)
		for _, issue := range zone.Consistency.Issues {
			fmt.Fprintf(b, "    issue: %s\n", issue)
		}
	}

	fmt.Fprintln(b)
}
