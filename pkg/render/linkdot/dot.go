// Package linkdot renders a schema's component links as a Graphviz graph.
//
// Link groups move together on the canvas, so seeing them laid out as a
// graph is the quickest way to audit which components are coupled. Each
// multi-member group becomes a cluster; unlinked components render as
// free-standing nodes.
package linkdot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// ToDOT converts the schema's link structure to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Edges reflect the effective link set under the given policy, so a
// one-to-one schema never shows an evicted link.
func ToDOT(s *schema.Schema, policy linkgroup.Policy) string {
	ids := make([]string, 0, len(s.Components))
	names := make(map[string]string, len(s.Components))
	for _, c := range s.Components {
		ids = append(ids, c.ID)
		names[c.ID] = c.Name
	}
	groups := linkgroup.Groups(ids, s.Links, policy)
	links := linkgroup.Effective(s.Links, policy)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	cluster := 0
	for _, group := range groups {
		if len(group) == 1 {
			id := group[0]
			fmt.Fprintf(&buf, "  %q [label=%q];\n", id, nodeLabel(id, names))
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", cluster)
		buf.WriteString("    style=dashed;\n")
		buf.WriteString("    color=grey;\n")
		for _, id := range group {
			fmt.Fprintf(&buf, "    %q [label=%q];\n", id, nodeLabel(id, names))
		}
		buf.WriteString("  }\n")
		cluster++
	}

	buf.WriteString("\n")
	for _, l := range links {
		fmt.Fprintf(&buf, "  %q -- %q;\n", l.Source, l.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(id string, names map[string]string) string {
	if name := names[id]; name != "" {
		return name
	}
	return id
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the view box starts at
// the origin. Graphviz emits translated view boxes that complicate embedding
// the graph in the builder's preview pane.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
