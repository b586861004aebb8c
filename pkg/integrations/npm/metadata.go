package npm

import (
	"bytes"
	"encoding/json"
)

// Metadata is the subset of an npm registry document that pkgpulse reads.
//
// Registry documents are loosely shaped: any of these fields may be missing
// and some have more than one encoding. Decoding never fails on a field of
// the wrong shape; the field is left empty instead, and the accessors below
// report absence with ok=false or an empty string.
type Metadata struct {
	Name       string     `json:"name"`
	DistTags   StringMap  `json:"dist-tags"`
	Time       StringMap  `json:"time"`
	Versions   Versions   `json:"versions"`
	Repository Repository `json:"repository"`
}

// LatestVersion returns the version tagged "latest".
func (m *Metadata) LatestVersion() (string, bool) {
	v, ok := m.DistTags["latest"]
	return v, ok && v != ""
}

// ReleaseTime returns the publish timestamp recorded for version.
func (m *Metadata) ReleaseTime(version string) (string, bool) {
	t, ok := m.Time[version]
	return t, ok && t != ""
}

// DeprecationOf returns the deprecation message of version, if any.
func (m *Metadata) DeprecationOf(version string) (string, bool) {
	v, ok := m.Versions[version]
	if !ok || v.Deprecated == "" {
		return "", false
	}
	return string(v.Deprecated), true
}

// RepositoryURL returns the raw repository URL, or "" when absent.
func (m *Metadata) RepositoryURL() string {
	return m.Repository.URL
}

// StringMap is a JSON object of string values. Non-string values are
// dropped and a non-object decodes to nil.
type StringMap map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringMap) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	out := make(StringMap, len(raw))
	for k, v := range raw {
		if str, ok := v.(string); ok {
			out[k] = str
		}
	}
	*s = out
	return nil
}

// Versions maps version numbers to their manifests.
type Versions map[string]Version

// UnmarshalJSON implements json.Unmarshaler. A non-object decodes to nil.
func (vs *Versions) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*vs = nil
		return nil
	}
	out := make(Versions, len(raw))
	for k, msg := range raw {
		var v Version
		_ = json.Unmarshal(msg, &v)
		out[k] = v
	}
	*vs = out
	return nil
}

// Version is the subset of a version manifest that pkgpulse reads.
type Version struct {
	Deprecated Deprecation `json:"deprecated"`
}

// Deprecation is a deprecation message. Only string values count; booleans
// and other shapes decode to "".
type Deprecation string

// UnmarshalJSON implements json.Unmarshaler.
func (d *Deprecation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = ""
		return nil
	}
	*d = Deprecation(s)
	return nil
}

// Repository is the "repository" field, which is either an object with a
// "url" key or a bare URL string.
type Repository struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Repository) UnmarshalJSON(data []byte) error {
	*r = Repository{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		_ = json.Unmarshal(data, &r.URL)
	case '{':
		var obj struct {
			Type any `json:"type"`
			URL  any `json:"url"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		r.Type, _ = obj.Type.(string)
		r.URL, _ = obj.URL.(string)
	}
	return nil
}
