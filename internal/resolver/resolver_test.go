package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
)

func testResolver() *Resolver {
	cfg := config.ResolverConfig{
		Nameservers:           []string{"8.8.8.8", "1.1.1.1"},
		TimeoutSeconds:        3,
		EDNS0UDPSize:          4096,
		MaxConsistencyServers: 5,
	}
	return New(cfg, logservice.NewLogService("test"))
}

func TestBuildQuerySetsDOBitAndPayloadSize(t *testing.T) {
	r := testResolver()
	msg := r.buildQuery("example.com", dns.TypeDNSKEY)

	if !msg.RecursionDesired {
		t.Errorf("expected RecursionDesired to be set")
	}

	opt := msg.IsEdns0()
	if opt == nil {
		t.Fatalf("expected an EDNS0 OPT record")
	}
	if !opt.Do() {
		t.Errorf("expected the DO bit to be set per spec §4.2")
	}
	if opt.UDPSize() != 4096 {
		t.Errorf("UDPSize = %d, want 4096", opt.UDPSize())
	}
	if msg.Question[0].Name != "example.com." {
		t.Errorf("Question name = %s, want fully-qualified", msg.Question[0].Name)
	}
}

func TestZoneHierarchyDelegatesToDomainExtractor(t *testing.T) {
	r := testResolver()
	got := r.ZoneHierarchy("www.example.co.uk")
	want := []string{".", "uk.", "co.uk.", "example.co.uk.", "www.example.co.uk."}
	if len(got) != len(want) {
		t.Fatalf("ZoneHierarchy length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ZoneHierarchy()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestQueryNameserverDirectReportsUnreachableServerWithoutError(t *testing.T) {
	r := testResolver()
	// 192.0.2.0/24 is TEST-NET-1 (RFC 5737): guaranteed unreachable/non-routable.
	resp := r.QueryNameserverDirect(context.Background(), "192.0.2.1", "example.com.", 200*time.Millisecond)

	if resp.Responded {
		t.Errorf("expected Responded=false for an unreachable server")
	}
	if resp.Error == "" {
		t.Errorf("expected a populated Error for a failed exchange")
	}
}
