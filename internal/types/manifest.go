package types

import "encoding/xml"

const MetadataNamespace = "http://soap.sforce.com/2006/04/metadata"

// Manifest is a Metadata API package.xml document.
type Manifest struct {
	XMLName xml.Name       `xml:"Package"`
	Xmlns   string         `xml:"xmlns,attr,omitempty"`
	Types   []ManifestType `xml:"types"`
	Version string         `xml:"version"`
}

type ManifestType struct {
	Members []string `xml:"members"`
	Name    string   `xml:"name"`
}

// MemberCount returns the number of members across all types.
func (m Manifest) MemberCount() int {
	total := 0
	for _, t := range m.Types {
		total += len(t.Members)
	}
	return total
}
