package config

// ResolverConfig configures the recursive resolver the DNS query layer
// talks to, and the EDNS0/consistency-check parameters from spec §4.2.
type ResolverConfig struct {
	// Nameservers is the ordered list of recursive resolver IPs queried
	// for zone/record lookups. Falls back to the system resolver when
	// empty, per §4.2 "Configuration".
	Nameservers []string `mapstructure:"nameservers" default:"[\"8.8.8.8\",\"1.1.1.1\",\"9.9.9.9\"]"`

	// TimeoutSeconds bounds every individual DNS query (§5 "Timeouts").
	TimeoutSeconds uint `mapstructure:"timeoutSeconds" default:"3"`

	// EDNS0UDPSize is the UDP payload size advertised in the EDNS0 OPT
	// record, with the DO bit always set (§4.2).
	EDNS0UDPSize uint16 `mapstructure:"edns0UDPSize" default:"4096"`

	// MaxConsistencyServers bounds how many authoritative nameservers
	// are queried for the cross-server DNSKEY consistency check (§4.2
	// "check_consistency", max_servers=5).
	MaxConsistencyServers int `mapstructure:"maxConsistencyServers" default:"5"`
}
