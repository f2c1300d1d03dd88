package dnsrecords

import "fmt"

// unknownName formats a display name for any numeric code not present
// in a lookup table, per spec §4.1 "unknown values format as Unknown (N)".
func unknownName(code uint8) string {
	return fmt.Sprintf("Unknown (%d)", code)
}
