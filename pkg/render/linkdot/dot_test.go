package linkdot

import (
	"strings"
	"testing"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

func linkedSchema() *schema.Schema {
	return &schema.Schema{
		SchemaVersion: schema.Version,
		Components: []schema.Component{
			{ID: "c1", Name: "Hero"},
			{ID: "c2", Name: "Sidebar"},
			{ID: "c3", Name: "Footer"},
		},
		Links: []schema.ComponentLink{
			{Source: "c1", Target: "c2"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(linkedSchema(), linkgroup.PolicyTransitive)

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("expected undirected graph, got: %s", dot)
	}
	for _, name := range []string{"Hero", "Sidebar", "Footer"} {
		if !strings.Contains(dot, name) {
			t.Errorf("DOT missing component label %q", name)
		}
	}
	if !strings.Contains(dot, `"c1" -- "c2"`) {
		t.Errorf("DOT missing link edge:\n%s", dot)
	}
	if !strings.Contains(dot, "subgraph cluster_0") {
		t.Errorf("linked pair should render as a cluster:\n%s", dot)
	}
	// Footer is unlinked so it renders outside any cluster.
	if strings.Contains(dot, "cluster_1") {
		t.Errorf("singleton should not get a cluster:\n%s", dot)
	}
}

func TestToDOTOneToOneEviction(t *testing.T) {
	s := linkedSchema()
	s.Links = append(s.Links, schema.ComponentLink{Source: "c2", Target: "c3"})

	dot := ToDOT(s, linkgroup.PolicyOneToOne)

	if strings.Contains(dot, `"c1" -- "c2"`) {
		t.Errorf("evicted link should not render:\n%s", dot)
	}
	if !strings.Contains(dot, `"c2" -- "c3"`) {
		t.Errorf("surviving link should render:\n%s", dot)
	}
}

func TestToDOTFallsBackToID(t *testing.T) {
	s := &schema.Schema{
		Components: []schema.Component{{ID: "c9"}},
	}
	dot := ToDOT(s, linkgroup.PolicyTransitive)
	if !strings.Contains(dot, `label="c9"`) {
		t.Errorf("unnamed component should use its ID as label:\n%s", dot)
	}
}
