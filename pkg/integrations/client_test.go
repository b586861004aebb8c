package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/pkgpulse/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	client := NewClient(nil, headers)

	if client.http == nil {
		t.Fatal("NewClient() http client is nil")
	}
	if client.http.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.http.Timeout, DefaultTimeout)
	}
	if client.headers["Accept"] != "application/vnd.github.v3+json" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Downloads int64 `json:"downloads"`
	}

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotUA = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(response{Downloads: 42})
	}))
	defer server.Close()

	client := NewClient(NewHTTPClient(time.Second), nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Downloads != 42 {
		t.Errorf("Get() downloads = %d, want 42", resp.Downloads)
	}
	if !strings.HasPrefix(gotUA, "pkgpulse/") {
		t.Errorf("User-Agent = %q, want pkgpulse/ prefix", gotUA)
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{"Accept": "application/vnd.github.v3+json"})

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"Accept": "text/plain"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if got != "text/plain" {
		t.Errorf("Accept = %q, want %q", got, "text/plain")
	}
}

func TestClientGetErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name:    "404",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    ErrNotFound,
		},
		{
			name:    "500",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			want:    ErrNetwork,
		},
		{
			name:    "403",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
			want:    ErrNetwork,
		},
		{
			name:    "html body",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>")) },
			want:    ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.Client(), nil)
			var resp map[string]any
			err := client.Get(context.Background(), server.URL, &resp)
			if !errors.Is(err, tt.want) {
				t.Errorf("Get() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClientGetTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(NewHTTPClient(time.Second), nil)
	var resp map[string]any
	if err := client.Get(context.Background(), url, &resp); !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
}

func TestClientReportsHTTPHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)
	var resp map[string]any
	_ = client.Get(context.Background(), server.URL+"/left-pad", &resp)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.requests) != 1 || hooks.requests[0] != "/left-pad" {
		t.Errorf("requests = %v, want [/left-pad]", hooks.requests)
	}
	if len(hooks.statuses) != 1 || hooks.statuses[0] != http.StatusNotFound {
		t.Errorf("statuses = %v, want [404]", hooks.statuses)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{200, nil},
		{204, nil},
		{301, ErrNetwork},
		{404, ErrNotFound},
		{429, ErrNetwork},
		{502, ErrNetwork},
	}

	for _, tt := range tests {
		err := checkStatus(tt.code)
		if tt.want == nil {
			if err != nil {
				t.Errorf("checkStatus(%d) unexpected error: %v", tt.code, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("checkStatus(%d) = %v, want %v", tt.code, err, tt.want)
		}
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"https url", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"with .git suffix", "https://github.com/user/repo.git", "https://github.com/user/repo"},
		{"trailing slash", "https://github.com/user/repo/", "https://github.com/user/repo"},
		{"git@ to https", "git@github.com:user/repo", "https://github.com/user/repo"},
		{"git:// to https", "git://github.com/user/repo", "https://github.com/user/repo"},
		{"git+ prefix", "git+https://github.com/user/repo.git", "https://github.com/user/repo"},
		{"git+ssh", "git+ssh://git@github.com/user/repo.git", "ssh://git@github.com/user/repo"},
		{"with spaces", "  https://github.com/user/repo  ", "https://github.com/user/repo"},
		{"combined", "git+git@github.com:user/repo.git", "https://github.com/user/repo"},
		{"other host", "git@gitlab.com:group/proj.git", "https://gitlab.com/group/proj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.input); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests []string
	statuses []int
}

func (h *recordingHooks) OnRequest(_ context.Context, _, _, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, path)
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}
