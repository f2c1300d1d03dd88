package validator

// TrustAnchor is one entry in the built-in IANA root trust anchor set,
// per spec §4.3 "Fixed trust anchors". The engine does not maintain a
// persistent trust anchor store (spec §1 Non-goals) — this list is
// compiled in and has no external override, a deliberate choice
// recorded in DESIGN.md.
type TrustAnchor struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     string
}

// rootTrustAnchors is the minimum required IANA root KSK set from spec
// §4.3: KSK-2017 (the long-standing root anchor) and KSK-2024 (the
// anchor introduced by the 2024 root KSK roll).
var rootTrustAnchors = []TrustAnchor{
	{KeyTag: 20326, Algorithm: 8, DigestType: 2, Digest: "E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D"},
	{KeyTag: 38696, Algorithm: 8, DigestType: 2, Digest: "683D2D0ACB8C9B712A1948B27F741219298D0A450D612C483AF444A4C0FB2B16"},
}

// RootTrustAnchors returns the compiled-in IANA root trust anchor set.
func RootTrustAnchors() []TrustAnchor {
	return append([]TrustAnchor(nil), rootTrustAnchors...)
}
