package inspect

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/pkgpulse/pkg/errors"
	"github.com/matzehuels/pkgpulse/pkg/integrations/npm"
)

var batchUpstream = upstream{
	registry: map[string]string{
		"a": `{"dist-tags":{"latest":"1.0.0"}}`,
		"b": `{"dist-tags":{"latest":"2.0.0"}}`,
	},
	downloads: map[string]string{
		"a": `{"downloads":1}`,
		"b": `{"downloads":2}`,
	},
}

func TestInspectAllPartialResults(t *testing.T) {
	insp, _ := batchUpstream.start(t)

	results := insp.InspectAll(context.Background(), []string{"a", "missing", "b"})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i, want := range []string{"a", "missing", "b"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
	}
	if results[0].Record == nil || results[0].Record.LatestVersion != "1.0.0" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[2].Record == nil || results[2].Record.LatestVersion != "2.0.0" {
		t.Errorf("results[2] = %+v", results[2])
	}
	if results[1].Record != nil || !errors.Is(results[1].Err, errors.ErrCodePackageNotFound) {
		t.Errorf("results[1] = %+v, want PACKAGE_NOT_FOUND", results[1])
	}

	if failed := Failed(results); len(failed) != 1 || failed[0].Name != "missing" {
		t.Errorf("Failed() = %+v", failed)
	}
	if recs := Records(results); len(recs) != 2 {
		t.Errorf("Records() returned %d records, want 2", len(recs))
	}
}

func TestInspectAllStrict(t *testing.T) {
	insp, _ := batchUpstream.start(t)
	ctx := context.Background()

	recs, err := insp.InspectAllStrict(ctx, []string{"a", "b"})
	if err != nil {
		t.Fatalf("InspectAllStrict() error: %v", err)
	}
	if len(recs) != 2 || recs[0].Name != "a" || recs[1].Name != "b" {
		t.Errorf("records out of order: %+v", recs)
	}

	recs, err = insp.InspectAllStrict(ctx, []string{"a", "missing", "b"})
	if err == nil {
		t.Fatal("InspectAllStrict() should fail when any package fails")
	}
	if recs != nil {
		t.Errorf("records = %+v, want nil", recs)
	}
}

type slowRegistry struct {
	active, peak *int32
}

func (s slowRegistry) FetchMetadata(ctx context.Context, pkg string) (*npm.Metadata, error) {
	n := atomic.AddInt32(s.active, 1)
	defer atomic.AddInt32(s.active, -1)
	for {
		p := atomic.LoadInt32(s.peak)
		if n <= p || atomic.CompareAndSwapInt32(s.peak, p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	return &npm.Metadata{}, nil
}

func TestInspectAllConcurrencyLimit(t *testing.T) {
	var active, peak int32
	insp := New(slowRegistry{&active, &peak}, fakeDownloads{n: 1}, fakeRepos{}, WithConcurrency(2))

	results := insp.InspectAll(context.Background(), []string{"a", "b", "c", "d", "e"})
	if len(Failed(results)) != 0 {
		t.Fatalf("unexpected failures: %+v", Failed(results))
	}
	if peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}
