// Package resolver implements the DNS query layer from spec §4.2: it
// issues recursive queries with the DNSSEC OK bit set, derives the zone
// hierarchy for a target domain, and gathers DNSKEY/DS/additional
// records plus authoritative-nameserver consistency data needed by the
// validator.
package resolver

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/miekg/dns"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/domainextractor"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models/dnsrecords"
)

// ednsUDPSize/timeout defaults come from config.ResolverConfig; the
// Resolver takes a snapshot of its configuration at construction time
// per spec §5 "Shared resources" ("once a validation starts it takes a
// snapshot of the configuration").
type Resolver struct {
	nameservers []string
	timeout     time.Duration
	udpSize     uint16
	maxServers  int

	udpClient *dns.Client
	tcpClient *dns.Client

	log logservice.Logger
}

// New builds a Resolver from a configuration snapshot. Passing a zero
// logservice.Logger is not supported; callers should use
// logservice.NewLogServiceDefault() when no specific logger is wired.
func New(cfg config.ResolverConfig, log logservice.Logger) *Resolver {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	nameservers := append([]string(nil), cfg.Nameservers...)
	if len(nameservers) == 0 {
		if sys, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil {
			nameservers = sys.Servers
		}
	}
	return &Resolver{
		nameservers: nameservers,
		timeout:     timeout,
		udpSize:     cfg.EDNS0UDPSize,
		maxServers:  cfg.MaxConsistencyServers,
		udpClient:   &dns.Client{Net: "udp", Timeout: timeout},
		tcpClient:   &dns.Client{Net: "tcp", Timeout: timeout},
		log:         log,
	}
}

// NewDefault builds a Resolver from the currently loaded configuration.
func NewDefault(log logservice.Logger) *Resolver {
	return New(config.ResolverCfg(), log)
}

// buildQuery constructs a recursive query for name/qtype with the DO
// bit set and the configured EDNS0 UDP payload size, per spec §4.2
// "Configuration".
func (r *Resolver) buildQuery(name string, qtype uint16) *dns.Msg {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true
	msg.SetEdns0(r.udpSize, true)
	return msg
}

// exchange sends msg to the first nameserver that answers, falling back
// to TCP when the UDP response is truncated, per spec §6 "Wire
// protocol". Every transport failure (timeout, unreachable resolver) is
// swallowed per spec §4.2 "query" — absence is reported as a nil
// response; callers must not infer NXDOMAIN from a nil
// response, only from an in-band RcodeNameError on a real message.
func (r *Resolver) exchange(ctx context.Context, msg *dns.Msg) *dns.Msg {
	for _, ns := range r.nameservers {
		addr := net.JoinHostPort(ns, "53")

		resp, _, err := r.udpClient.ExchangeContext(ctx, msg, addr)
		if err != nil {
			r.log.Debug("query %s to %s failed: %v", msg.Question[0].String(), ns, err)
			continue
		}

		if resp.Truncated {
			tcpResp, _, tcpErr := r.tcpClient.ExchangeContext(ctx, msg, addr)
			if tcpErr != nil {
				r.log.Debug("tcp fallback to %s failed: %v", ns, tcpErr)
				continue
			}
			resp = tcpResp
		}

		return resp
	}
	return nil
}

// Query issues a single recursive query for name/qtype and returns the
// raw response, or nil if no configured nameserver answered. A non-nil
// response with Rcode == dns.RcodeNameError is a true NXDOMAIN and is
// distinguished from the transport-failure case, per §9's supplemented
// NXDOMAIN-preservation behaviour.
func (r *Resolver) Query(ctx context.Context, name string, qtype uint16) *dns.Msg {
	return r.exchange(ctx, r.buildQuery(name, qtype))
}

// ZoneHierarchy derives the ordered root-first zone chain for domain,
// per spec §4.2 "zone_hierarchy".
func (r *Resolver) ZoneHierarchy(domain string) []string {
	return domainextractor.ZoneHierarchy(domain)
}

// QueryDNSKeys issues a DNSKEY query against zone and splits the answer
// into DNSKeyInfo and RRSIGInfo (type_covered DNSKEY) per spec §4.2
// "query_dnskeys". Any NSEC/NSEC3 records riding along in the authority
// section (common on negative/referral responses) are parsed for
// display per spec §1 ("NSEC data is parsed for display but not used
// for validation").
func (r *Resolver) QueryDNSKeys(ctx context.Context, zone string) ([]dnsrecords.DNSKeyInfo, []dnsrecords.RRSIGInfo, []dnsrecords.NSECInfo) {
	resp := r.Query(ctx, zone, dns.TypeDNSKEY)
	if resp == nil {
		return nil, nil, nil
	}

	var keys []dnsrecords.DNSKeyInfo
	var sigs []dnsrecords.RRSIGInfo
	for _, rr := range resp.Answer {
		switch v := rr.(type) {
		case *dns.DNSKEY:
			keys = append(keys, dnsrecords.NewDNSKeyInfo(v))
		case *dns.RRSIG:
			if v.TypeCovered == dns.TypeDNSKEY {
				sigs = append(sigs, dnsrecords.NewRRSIGInfo(v))
			}
		}
	}
	return keys, sigs, extractNSEC(resp)
}

// extractNSEC scans both the answer and authority sections of msg for
// NSEC/NSEC3 records, parsing each into an NSECInfo.
func extractNSEC(msg *dns.Msg) []dnsrecords.NSECInfo {
	var out []dnsrecords.NSECInfo
	for _, section := range [][]dns.RR{msg.Answer, msg.Ns} {
		for _, rr := range section {
			switch v := rr.(type) {
			case *dns.NSEC:
				out = append(out, dnsrecords.NewNSECInfo(v))
			case *dns.NSEC3:
				out = append(out, dnsrecords.NewNSEC3Info(v))
			}
		}
	}
	return out
}

// QueryDS issues a DS query against zone, which the recursive resolver
// transparently serves from the parent zone, per spec §4.2 "query_ds".
func (r *Resolver) QueryDS(ctx context.Context, zone string) []dnsrecords.DSInfo {
	resp := r.Query(ctx, zone, dns.TypeDS)
	if resp == nil {
		return nil
	}

	var out []dnsrecords.DSInfo
	for _, rr := range resp.Answer {
		if ds, ok := rr.(*dns.DS); ok {
			out = append(out, dnsrecords.NewDSInfo(ds))
		}
	}
	return out
}

// additionalQuery describes one record type gathered by
// QueryAdditionalRecords: the name to query, the RR type, and whether
// the query targets the _dmarc subdomain (which gates DMARC TXT
// relabelling per spec §3).
type additionalQuery struct {
	name    string
	qtype   uint16
	isDMARC bool
}

// QueryAdditionalRecords gathers SOA/NS/A/AAAA/MX/TXT at the apex plus
// TXT at _dmarc.<domain>, per spec §4.2 "query_additional_records". NS
// records additionally get a best-effort forward A lookup for display;
// failures there are silently skipped.
func (r *Resolver) QueryAdditionalRecords(ctx context.Context, domain string) []dnsrecords.AdditionalRecord {
	fqdn := dns.Fqdn(domain)
	queries := []additionalQuery{
		{fqdn, dns.TypeSOA, false},
		{fqdn, dns.TypeNS, false},
		{fqdn, dns.TypeA, false},
		{fqdn, dns.TypeAAAA, false},
		{fqdn, dns.TypeMX, false},
		{fqdn, dns.TypeTXT, false},
		{"_dmarc." + fqdn, dns.TypeTXT, true},
	}

	var out []dnsrecords.AdditionalRecord
	for _, q := range queries {
		resp := r.Query(ctx, q.name, q.qtype)
		if resp == nil {
			continue
		}

		var firstSig *dnsrecords.RRSIGInfo
		for _, rr := range resp.Answer {
			if sig, ok := rr.(*dns.RRSIG); ok && firstSig == nil {
				info := dnsrecords.NewRRSIGInfo(sig)
				firstSig = &info
			}
		}

		for _, rr := range resp.Answer {
			if _, ok := rr.(*dns.RRSIG); ok {
				continue
			}
			rec := dnsrecords.NewAdditionalRecord(rr, q.isDMARC)
			if rec == nil {
				continue
			}
			rec.RRSIG = firstSig
			rec.IsSigned = firstSig != nil
			out = append(out, *rec)

			if rec.RecordType == "NS" {
				out = append(out, r.resolveNSAddress(ctx, rec.Value)...)
			}
		}
	}
	return out
}

// resolveNSAddress does a best-effort forward A lookup for an NS
// hostname, synthesising an A AdditionalRecord on success. Failures are
// skipped silently, per spec §4.2.
func (r *Resolver) resolveNSAddress(ctx context.Context, nsName string) []dnsrecords.AdditionalRecord {
	resp := r.Query(ctx, nsName, dns.TypeA)
	if resp == nil {
		return nil
	}
	var out []dnsrecords.AdditionalRecord
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			out = append(out, dnsrecords.AdditionalRecord{
				RecordType: "A",
				Name:       nsName,
				Value:      a.A.String(),
				TTL:        a.Hdr.Ttl,
			})
		}
	}
	return out
}

// NSRecord is an authoritative nameserver discovered for a zone: its
// hostname and resolved IPv4 address.
type NSRecord struct {
	Name string
	IP   string
}

// GetAuthoritativeNameservers discovers zone's authoritative
// nameservers by querying its NS records and resolving each hostname
// to an address, per spec §4.2 "get_authoritative_nameservers". A
// hostname that fails to resolve is skipped silently.
func (r *Resolver) GetAuthoritativeNameservers(ctx context.Context, zone string) []NSRecord {
	resp := r.Query(ctx, zone, dns.TypeNS)
	if resp == nil {
		return nil
	}

	var out []NSRecord
	for _, rr := range resp.Answer {
		ns, ok := rr.(*dns.NS)
		if !ok {
			continue
		}
		aResp := r.Query(ctx, ns.Ns, dns.TypeA)
		if aResp == nil {
			continue
		}
		for _, arr := range aResp.Answer {
			if a, ok := arr.(*dns.A); ok {
				out = append(out, NSRecord{Name: ns.Ns, IP: a.A.String()})
				break
			}
		}
	}
	return out
}

// QueryNameserverDirect issues a single DNSKEY query directly to ip
// over UDP with the DO bit set, bypassing the configured recursive
// resolvers, per spec §4.2 "query_nameserver_direct". Timeouts and
// socket errors populate Error and leave Responded false rather than
// returning a Go error, matching the spec's ServerResponse shape.
func (r *Resolver) QueryNameserverDirect(ctx context.Context, ip, zone string, timeout time.Duration) models.ServerResponse {
	resp := models.ServerResponse{ServerIP: ip, ServerName: zone}

	msg := r.buildQuery(zone, dns.TypeDNSKEY)
	client := &dns.Client{Net: "udp", Timeout: timeout}

	start := time.Now()
	answer, _, err := client.ExchangeContext(ctx, msg, net.JoinHostPort(ip, "53"))
	resp.ResponseTimeMs = time.Since(start).Milliseconds()

	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Responded = true
	for _, rr := range answer.Answer {
		switch v := rr.(type) {
		case *dns.DNSKEY:
			resp.DNSKeyKeyTags = append(resp.DNSKeyKeyTags, v.KeyTag())
		case *dns.RRSIG:
			if v.TypeCovered == dns.TypeDNSKEY {
				resp.HasRRSIG = true
			}
		}
	}
	return resp
}

// CheckConsistency queries up to r.maxServers authoritative nameservers
// for zone in parallel and aggregates their DNSKEY responses into a
// ConsistencyResult, per spec §4.2 "check_consistency" and §5
// "Parallelism within the resolver".
func (r *Resolver) CheckConsistency(ctx context.Context, zone string, servers []NSRecord) *models.ConsistencyResult {
	if len(servers) > r.maxServers {
		servers = servers[:r.maxServers]
	}

	responses := make([]models.ServerResponse, len(servers))
	var wg sync.WaitGroup
	for i, srv := range servers {
		wg.Add(1)
		go func(i int, srv NSRecord) {
			defer wg.Done()
			resp := r.QueryNameserverDirect(ctx, srv.IP, zone, r.timeout)
			resp.ServerName = srv.Name
			responses[i] = resp
		}(i, srv)
	}
	wg.Wait()

	return models.NewConsistencyResult(responses)
}

// QueryZoneChain composes zone hierarchy derivation, DNSKEY/DS queries,
// additional-record gathering for the terminal zone, and (optionally)
// consistency checks, per spec §4.2 "query_zone_chain". The returned
// chain's zones carry only raw record data — classification into
// SECURE/INSECURE/BOGUS/INDETERMINATE is the validator's job.
func (r *Resolver) QueryZoneChain(ctx context.Context, domain string, checkConsistency bool) *models.TrustChain {
	start := time.Now()
	chain := models.NewTrustChain(dns.Fqdn(domain), append([]string(nil), r.nameservers...))

	hierarchy := r.ZoneHierarchy(domain)
	var parent string
	for _, zoneName := range hierarchy {
		zone := models.NewZoneInfo(zoneName, parent)

		zone.DNSKeys, zone.RRSIGs, zone.NSECRecords = r.QueryDNSKeys(ctx, zoneName)
		if !zone.IsRoot() {
			zone.DSRecords = r.QueryDS(ctx, zoneName)
		}

		if zoneName == hierarchy[len(hierarchy)-1] {
			zone.AdditionalRecords = r.QueryAdditionalRecords(ctx, zoneName)
		}

		if checkConsistency && !zone.IsRoot() {
			if servers := r.GetAuthoritativeNameservers(ctx, zoneName); len(servers) > 0 {
				zone.Consistency = r.CheckConsistency(ctx, zoneName, servers)
			}
		}

		chain.Zones = append(chain.Zones, zone)
		parent = zoneName
	}

	chain.QueryDurationMs = time.Since(start).Milliseconds()
	return chain
}
