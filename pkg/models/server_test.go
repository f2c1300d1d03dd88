package models

import "testing"

func TestNewConsistencyResultAllConsistent(t *testing.T) {
	responses := []ServerResponse{
		{ServerIP: "1.1.1.1", ServerName: "a.ns.", Responded: true, HasRRSIG: true, DNSKeyKeyTags: []uint16{1, 2}},
		{ServerIP: "2.2.2.2", ServerName: "b.ns.", Responded: true, HasRRSIG: true, DNSKeyKeyTags: []uint16{2, 1}},
	}

	result := NewConsistencyResult(responses)

	if !result.IsConsistent {
		t.Errorf("expected consistent result, got issues: %v", result.Issues)
	}
	if result.NameserversQueried != 2 || result.NameserversResponded != 2 {
		t.Errorf("queried/responded = %d/%d, want 2/2", result.NameserversQueried, result.NameserversResponded)
	}
}

func TestNewConsistencyResultDivergentKeySets(t *testing.T) {
	responses := []ServerResponse{
		{ServerIP: "1.1.1.1", ServerName: "a.ns.", Responded: true, HasRRSIG: true, DNSKeyKeyTags: []uint16{1, 2}},
		{ServerIP: "2.2.2.2", ServerName: "b.ns.", Responded: true, HasRRSIG: true, DNSKeyKeyTags: []uint16{1}},
	}

	result := NewConsistencyResult(responses)

	if result.IsConsistent {
		t.Errorf("expected inconsistent result for divergent key sets")
	}
	if len(result.Issues) == 0 {
		t.Errorf("expected at least one issue describing the divergence")
	}
}

func TestNewConsistencyResultMissingRRSIGFlipsConsistency(t *testing.T) {
	responses := []ServerResponse{
		{ServerIP: "1.1.1.1", ServerName: "a.ns.", Responded: true, HasRRSIG: false, DNSKeyKeyTags: []uint16{1}},
	}

	result := NewConsistencyResult(responses)
	if result.IsConsistent {
		t.Errorf("expected DNSKEYs without RRSIG to flip is_consistent to false")
	}
}

func TestNewConsistencyResultUnresponsiveDoesNotAloneFlip(t *testing.T) {
	responses := []ServerResponse{
		{ServerIP: "1.1.1.1", ServerName: "a.ns.", Responded: true, HasRRSIG: true, DNSKeyKeyTags: []uint16{1}},
		{ServerIP: "3.3.3.3", ServerName: "c.ns.", Responded: false, Error: "timeout"},
	}

	result := NewConsistencyResult(responses)
	if !result.IsConsistent {
		t.Errorf("a single unresponsive server must not by itself flip is_consistent")
	}
	if len(result.Issues) != 1 {
		t.Errorf("expected exactly one issue for the unresponsive server, got %v", result.Issues)
	}
}
