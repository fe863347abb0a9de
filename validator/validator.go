// Package validator implements the XML 1.0 Name/QName productions and
// the namespace-validation rule for element and attribute names (§4.4).
// The dot package's CreateElement, CreateElementNS, CreateAttribute and
// CreateAttributeNS do not call it: they accept any name and return no
// error.
package validator

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/nsmap"
)

// IsNameStartChar implements the XML 1.0 NameStartChar production.
func IsNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 0xC0 && r <= 0xD6:
		return true
	case r >= 0xD8 && r <= 0xF6:
		return true
	case r >= 0xF8 && r <= 0x2FF:
		return true
	case r >= 0x370 && r <= 0x37D:
		return true
	case r >= 0x37F && r <= 0x1FFF:
		return true
	case r >= 0x200C && r <= 0x200D:
		return true
	case r >= 0x2070 && r <= 0x218F:
		return true
	case r >= 0x2C00 && r <= 0x2FEF:
		return true
	case r >= 0x3001 && r <= 0xD7FF:
		return true
	case r >= 0xF900 && r <= 0xFDCF:
		return true
	case r >= 0xFDF0 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0xEFFFF:
		return true
	default:
		return false
	}
}

// IsNameChar implements the XML 1.0 NameChar production: NameStartChar
// plus digits, '-', '.', the middle-dot, and a couple of combining-mark
// ranges.
func IsNameChar(r rune) bool {
	if IsNameStartChar(r) {
		return true
	}
	switch {
	case r == '-' || r == '.':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == 0xB7:
		return true
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x203F && r <= 0x2040:
		return true
	default:
		return false
	}
}

// IsName reports whether s is a well-formed XML Name: a NameStartChar
// followed by zero or more NameChars.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !IsNameStartChar(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !IsNameChar(r) {
			return false
		}
	}
	return true
}

// IsQName reports whether s is a well-formed XML QName: either a bare
// Name with no colon, or `prefix:local` where both parts are Names and
// there is no further colon.
func IsQName(s string) bool {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) == 1 {
		return IsName(s)
	}
	prefix, local := parts[0], parts[1]
	if strings.Contains(local, ":") {
		return false
	}
	return IsName(prefix) && IsName(local)
}

// ValidateNS enforces §4.4's namespace-validation rule: the qualified
// name must be a valid QName, a prefix requires a non-empty namespace,
// the "xml" prefix is only legal with the XML namespace, the "xmlns"
// prefix is only legal with the XMLNS namespace, and the XMLNS namespace
// is only legal with the "xmlns" prefix or the bare name "xmlns". The
// XML namespace itself is accepted with any prefix.
func ValidateNS(namespaceURI, qualifiedName string) error {
	if !IsQName(qualifiedName) {
		return domerr.New(domerr.InvalidCharacterError, "not a valid qualified name: "+qualifiedName)
	}

	var prefix, local string
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		prefix, local = qualifiedName[:i], qualifiedName[i+1:]
	} else {
		local = qualifiedName
	}
	_ = local

	if prefix != "" && namespaceURI == "" {
		return domerr.New(domerr.NamespaceError, "prefix '"+prefix+"' requires a non-empty namespace")
	}
	if prefix == "xml" && namespaceURI != xmlURI {
		return domerr.New(domerr.NamespaceError, "prefix 'xml' must be bound to the XML namespace")
	}
	if prefix == "xmlns" && namespaceURI != xmlnsURI {
		return domerr.New(domerr.NamespaceError, "prefix 'xmlns' must be bound to the XMLNS namespace")
	}
	if namespaceURI == xmlnsURI && qualifiedName != "xmlns" && prefix != "xmlns" {
		return domerr.New(domerr.NamespaceError, "the XMLNS namespace may only be bound to the 'xmlns' prefix or attribute")
	}
	return nil
}

const (
	xmlURI   = "http://www.w3.org/XML/1998/namespace"
	xmlnsURI = "http://www.w3.org/2000/xmlns/"
)

// ValidateNSID is a convenience wrapper over ValidateNS for callers that
// already hold an interned namespace id rather than a raw URI.
func ValidateNSID(namespaces *nsmap.Map, namespaceID nsmap.ID, qualifiedName string) error {
	uri, _ := namespaces.URI(namespaceID)
	return ValidateNS(uri, qualifiedName)
}
