// Package lsid handles ZooBank life-science identifiers.
package lsid

import "strings"

// Kinds of ZooBank LSIDs.
const (
	KindAct         = "act"
	KindPublication = "publication"
)

// LSID is a persistent identifier with its resolvable link.
type LSID struct {
	// Value is the identifier as given, e.g.
	// "urn:lsid:zoobank.org:act:6A0B...".
	Value string `json:"value"`
	// URL is the link target created from a base URL and the Value.
	URL string `json:"url"`
	// Kind is "act", "publication" or empty if unknown.
	Kind string `json:"kind,omitempty"`
}

// New creates an LSID. It returns nil for an empty value.
func New(value, baseURL string) *LSID {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	res := LSID{Value: value, URL: baseURL + value}
	switch {
	case strings.Contains(value, "act"):
		res.Kind = KindAct
	case strings.Contains(value, "pub"):
		res.Kind = KindPublication
	}
	return &res
}
