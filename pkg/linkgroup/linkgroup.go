// Package linkgroup resolves component links into link groups: the
// equivalence classes of components that represent the same logical element
// across breakpoints.
//
// Links form an undirected graph over component ids; [Groups] computes its
// connected components with union-find. The historical ambiguity between
// "any number of links per component" and "one link per component, newer
// evicts older" is resolved with an explicit [Policy] - callers choose, the
// package never mixes both behaviors implicitly.
package linkgroup

import (
	"fmt"
	"sort"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// Policy selects how multiple links touching the same component combine.
type Policy int

const (
	// PolicyTransitive lets any number of links share an endpoint, so
	// chains like a-b, b-c merge into one group {a, b, c}. This is the
	// engine default.
	PolicyTransitive Policy = iota

	// PolicyOneToOne enforces at most one link per component: inserting a
	// link whose endpoint is already linked evicts that endpoint's older
	// links first, in input order. Groups are therefore pairs or singletons.
	PolicyOneToOne
)

// String returns the policy name for logs and flags.
func (p Policy) String() string {
	switch p {
	case PolicyTransitive:
		return "transitive"
	case PolicyOneToOne:
		return "one-to-one"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "transitive":
		return PolicyTransitive, nil
	case "one-to-one":
		return PolicyOneToOne, nil
	default:
		return 0, fmt.Errorf("invalid link policy: %q (must be 'transitive' or 'one-to-one')", s)
	}
}

// Groups returns the link groups over ids induced by links under the given
// policy. Every id appears in exactly one group; ids touched by no link form
// singleton groups. Self-links and duplicate or reversed pairs add nothing.
//
// Groups are ordered by the first appearance of any member in ids, and each
// group lists its members in ids order, so the result is independent of link
// insertion order under a fixed policy. Link endpoints not present in ids
// are ignored: a link to a deleted component must not resurrect it.
func Groups(ids []string, links []schema.ComponentLink, policy Policy) [][]string {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	uf := newUnionFind(ids)
	for _, l := range Effective(links, policy) {
		if known[l.Source] && known[l.Target] && l.Source != l.Target {
			uf.union(l.Source, l.Target)
		}
	}

	// Bucket ids by root, preserving ids order within each group.
	order := make(map[string]int, len(ids))
	buckets := make(map[string][]string)
	for i, id := range ids {
		if _, seen := order[id]; seen {
			continue // duplicate id in input; grouped once
		}
		order[id] = i
		root := uf.find(id)
		buckets[root] = append(buckets[root], id)
	}

	groups := make([][]string, 0, len(buckets))
	for _, members := range buckets {
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return order[groups[i][0]] < order[groups[j][0]]
	})
	return groups
}

// Effective reduces a raw link list to the links that count under policy.
//
// Under [PolicyTransitive] every link counts. Under [PolicyOneToOne] links
// are replayed in order and each insertion evicts any earlier link sharing
// an endpoint, mirroring the canvas behavior of re-linking a component.
func Effective(links []schema.ComponentLink, policy Policy) []schema.ComponentLink {
	if policy != PolicyOneToOne {
		return links
	}

	var kept []schema.ComponentLink
	for _, l := range links {
		n := 0
		for _, k := range kept {
			if shares(k, l) {
				continue // evicted by the newer link
			}
			kept[n] = k
			n++
		}
		kept = append(kept[:n], l)
	}
	return kept
}

// Insert adds a link between a and b to links under policy, returning the
// updated list. Duplicate pairs (in either direction) and self-links leave
// the list unchanged. Under [PolicyOneToOne] existing links touching a or b
// are evicted first.
func Insert(links []schema.ComponentLink, a, b string, policy Policy) []schema.ComponentLink {
	if a == b {
		return links
	}
	for _, l := range links {
		if (l.Source == a && l.Target == b) || (l.Source == b && l.Target == a) {
			return links
		}
	}

	if policy == PolicyOneToOne {
		n := 0
		for _, l := range links {
			if l.Source == a || l.Target == a || l.Source == b || l.Target == b {
				continue
			}
			links[n] = l
			n++
		}
		links = links[:n]
	}

	return append(links, schema.ComponentLink{Source: a, Target: b})
}

// AddLink links components a and b in the schema under policy. It is the
// mutation counterpart of [Insert] for callers holding a whole schema.
func AddLink(s *schema.Schema, a, b string, policy Policy) {
	s.Links = Insert(s.Links, a, b, policy)
}

func shares(a, b schema.ComponentLink) bool {
	return a.Source == b.Source || a.Source == b.Target ||
		a.Target == b.Source || a.Target == b.Target
}

// unionFind is a plain union-find with path compression over string ids.
type unionFind struct {
	parent map[string]string
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id string) string {
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[id] != root {
		uf.parent[id], id = root, uf.parent[id]
	}
	return root
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[rb] = ra
	}
}
