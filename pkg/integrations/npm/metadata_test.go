package npm

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, doc string) *Metadata {
	t.Helper()
	var m Metadata
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", doc, err)
	}
	return &m
}

func TestMetadataAbsentFields(t *testing.T) {
	m := decode(t, `{}`)

	if _, ok := m.LatestVersion(); ok {
		t.Error("LatestVersion() should be absent")
	}
	if _, ok := m.ReleaseTime("1.0.0"); ok {
		t.Error("ReleaseTime() should be absent")
	}
	if _, ok := m.DeprecationOf("1.0.0"); ok {
		t.Error("DeprecationOf() should be absent")
	}
	if m.RepositoryURL() != "" {
		t.Errorf("RepositoryURL() = %q, want empty", m.RepositoryURL())
	}
}

func TestMetadataDeprecation(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   string
		wantOK bool
	}{
		{"string", `{"versions":{"1.0.0":{"deprecated":"use v2"}}}`, "use v2", true},
		{"empty string", `{"versions":{"1.0.0":{"deprecated":""}}}`, "", false},
		{"boolean", `{"versions":{"1.0.0":{"deprecated":true}}}`, "", false},
		{"other version", `{"versions":{"0.9.0":{"deprecated":"old"}}}`, "", false},
		{"versions not object", `{"versions":"nope"}`, "", false},
		{"version not object", `{"versions":{"1.0.0":42}}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decode(t, tt.doc).DeprecationOf("1.0.0")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DeprecationOf() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMetadataRepository(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"object", `{"repository":{"type":"git","url":"git+https://github.com/o/r.git"}}`, "git+https://github.com/o/r.git"},
		{"string", `{"repository":"https://github.com/o/r"}`, "https://github.com/o/r"},
		{"object without url", `{"repository":{"type":"git"}}`, ""},
		{"non-string url", `{"repository":{"url":7}}`, ""},
		{"null", `{"repository":null}`, ""},
		{"array", `{"repository":["x"]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode(t, tt.doc).RepositoryURL(); got != tt.want {
				t.Errorf("RepositoryURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadataLenientMaps(t *testing.T) {
	m := decode(t, `{"dist-tags":{"latest":"2.0.0","beta":3},"time":["x"]}`)

	if v, ok := m.LatestVersion(); !ok || v != "2.0.0" {
		t.Errorf("LatestVersion() = %q, %v; want 2.0.0, true", v, ok)
	}
	if _, ok := m.DistTags["beta"]; ok {
		t.Error("non-string dist-tag should be dropped")
	}
	if m.Time != nil {
		t.Errorf("Time = %v, want nil for non-object", m.Time)
	}
}
