package md2wiki

import (
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCorpus
// ---------------------------------------------------------------------------

func TestCorpus_AddKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	c := NewCorpus()
	c.Add(Document{ID: "A", Path: "one/A.md"})
	c.Add(Document{ID: "B", Path: "B.md"})
	c.Add(Document{ID: "A", Path: "two/A.md"})

	if got := strings.Join(c.IDs(), ","); got != "A,B" {
		t.Errorf("IDs() = %q, want A,B", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	d, ok := c.Get("A")
	if !ok || d.Path != "two/A.md" {
		t.Errorf("Get(A) = %+v, %v; want last writer two/A.md", d, ok)
	}
	if docs := c.Documents(); docs[0].Path != "two/A.md" || docs[1].ID != "B" {
		t.Errorf("Documents() = %+v", docs)
	}
}

func TestCorpus_IDsIsACopy(t *testing.T) {
	t.Parallel()

	c := NewCorpus()
	c.Add(Document{ID: "A"})
	ids := c.IDs()
	ids[0] = "changed"
	if c.IDs()[0] != "A" {
		t.Error("IDs() exposed internal order")
	}
}

func TestCorpus_IndexRebuiltAfterAdd(t *testing.T) {
	t.Parallel()

	c := NewCorpus()
	c.Add(Document{ID: "Alpha"})
	first := c.Index()
	if c.Index() != first {
		t.Error("Index() rebuilt without a change")
	}

	if _, ok := c.Resolve("Beta"); ok {
		t.Fatal("Resolve(Beta) matched before Beta was added")
	}
	c.Add(Document{ID: "Beta"})
	if c.Index() == first {
		t.Error("Index() not rebuilt after Add")
	}
	if d, ok := c.Resolve("beta"); !ok || d.ID != "Beta" {
		t.Errorf("Resolve(beta) = %+v, %v", d, ok)
	}
}

func TestCorpus_Resolve(t *testing.T) {
	t.Parallel()

	c := NewCorpus()
	for _, id := range []string{"Alpha Beta", "Alpha", "Project X"} {
		c.Add(Document{ID: id, HTML: "<p>" + id + "</p>"})
	}

	tests := []struct {
		ref       string
		wantID    string
		wantPhase Phase
	}{
		{"alpha", "Alpha", PhaseExact},
		{"ALPHA BETA", "Alpha Beta", PhaseExact},
		{"proj", "Project X", PhaseFallback},
		{"alpha b", "Alpha Beta", PhaseFallback},
		{"Project X and more", "Project X", PhaseFallback},
		{"nothing", "", PhaseNone},
		{"", "", PhaseNone},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			d, phase := c.Explain(tt.ref)
			if d.ID != tt.wantID || phase != tt.wantPhase {
				t.Errorf("Explain(%q) = %q/%v, want %q/%v", tt.ref, d.ID, phase, tt.wantID, tt.wantPhase)
			}
			if tt.wantID != "" && d.HTML != "<p>"+tt.wantID+"</p>" {
				t.Errorf("Explain(%q) returned document without its fragment", tt.ref)
			}
		})
	}
}

func TestCorpus_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	c := NewCorpus()
	c.Add(Document{ID: "Alpha"})
	c.Add(Document{ID: "Project X"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d, ok := c.Resolve("proj"); !ok || d.ID != "Project X" {
				t.Errorf("Resolve(proj) = %+v, %v", d, ok)
			}
		}()
	}
	wg.Wait()
}
