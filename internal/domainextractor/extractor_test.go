package domainextractor

import (
	"reflect"
	"testing"
)

func TestExtractDomain(t *testing.T) {
	testCases := []struct {
		url         string
		expected    string
		expectError bool
	}{
		{"http://www.example.com", "example.com", false},
		{"https://example.com", "example.com", false},
		{"example.com", "example.com", false},
		{"https://subdomain.example.com", "subdomain.example.com", false},
		{"https://www.subdomain.example.com", "subdomain.example.com", false},
		{"ftp://example.com/resource", "example.com", false},
		{"http://www.example.com:8080", "example.com", false},
		{"https://www.example.com/path?query=string", "example.com", false},
		{"http://invalid-url", "", true},
		{"invalid-url", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			domain, err := ExtractDomain(tc.url)
			if (err != nil) != tc.expectError {
				t.Errorf("ExtractDomain(%s): unexpected error status: %v", tc.url, err)
			}
			if domain != tc.expected {
				t.Errorf("ExtractDomain(%s): expected %s, got %s", tc.url, tc.expected, domain)
			}
		})
	}
}

func TestZoneHierarchy(t *testing.T) {
	testCases := []struct {
		domain   string
		expected []string
	}{
		{"example.com", []string{".", "com.", "example.com."}},
		{"example.com.", []string{".", "com.", "example.com."}},
		{"com", []string{".", "com."}},
		{".", []string{"."}},
		{"www.example.co.uk", []string{".", "uk.", "co.uk.", "example.co.uk.", "www.example.co.uk."}},
		{"a.b.c.d.example.com", []string{
			".", "com.", "example.com.", "d.example.com.", "c.d.example.com.",
			"b.c.d.example.com.", "a.b.c.d.example.com.",
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.domain, func(t *testing.T) {
			got := ZoneHierarchy(tc.domain)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ZoneHierarchy(%s) = %v, want %v", tc.domain, got, tc.expected)
			}
		})
	}
}
