package domainextractor

import (
	"errors"
	"net/url"
	"strings"

	"github.com/miekg/dns"
)

func ExtractDomain(urlStr string) (string, error) {
	if !strings.Contains(urlStr, "://") {
		urlStr = "https://" + urlStr
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", err
	}

	hostname := parsedURL.Hostname()

	if !strings.Contains(hostname, ".") {
		return "", errors.New("invalid hostname or domain missing")
	}

	if strings.HasPrefix(hostname, "www.") {
		hostname = strings.TrimPrefix(hostname, "www.")
	}

	return hostname, nil
}

// ZoneHierarchy returns the ordered chain of zone names from the root
// down to domain, root-first. Input is normalised to fully-qualified
// (trailing-dot) form before the hierarchy is derived, so "example.com"
// and "example.com." produce identical results.
//
// Example: "www.example.co.uk" -> [".", "uk.", "co.uk.", "example.co.uk.", "www.example.co.uk."]
func ZoneHierarchy(domain string) []string {
	fqdn := dns.Fqdn(strings.TrimSpace(domain))
	if fqdn == "." {
		return []string{"."}
	}

	labels := dns.SplitDomainName(fqdn)
	zones := make([]string, 0, len(labels)+1)
	zones = append(zones, ".")

	seen := map[string]bool{".": true}
	for i := len(labels) - 1; i >= 0; i-- {
		suffix := dns.Fqdn(strings.Join(labels[i:], "."))
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		zones = append(zones, suffix)
	}

	return zones
}
