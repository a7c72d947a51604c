// Package pkg provides the core libraries for the visual layout builder's
// consistency engine.
//
// # Overview
//
// The builder composes pages by placing components on per-breakpoint grids.
// This directory holds the engine that keeps those placements consistent:
//
//  1. [schema] - The layout document: components, breakpoints, layouts, links
//  2. [geometry] / [gridarea] - Grid-cell rectangle math and placement formats
//  3. [transform] - The breakpoint inheritance cascade
//  4. [validate] - The rule engine producing error and warning findings
//  5. [linkgroup] - Link-group resolution (transitive and one-to-one policies)
//  6. [pipeline] - Orchestration (normalize → validate → render) with caching
//
// # Architecture
//
// The typical data flow through the engine:
//
//	Schema document (JSON)
//	         ↓
//	    [transform] package (cascade breakpoint tiers)
//	         ↓
//	    [validate] package (rule engine: errors + warnings)
//	         ↓
//	    [render/linkdot] package (link graph as DOT/SVG)
//
// # Quick Start
//
// Normalize and validate a schema:
//
//	import (
//	    "github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
//	    "github.com/jhlee0409/visual-layout-builder-sub001/pkg/transform"
//	    "github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate"
//	)
//
//	s, _ := schema.ReadFile("schema.json")
//	normalized := transform.Normalize(s)
//	report := validate.Validate(normalized)
//	if !report.Valid {
//	    for _, f := range report.Errors {
//	        fmt.Println(f.Code, f.Message)
//	    }
//	}
//
// Or run the full cached pipeline the CLI and API share:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, _ := runner.Execute(ctx, s, pipeline.Options{Normalize: true})
//
// # Infrastructure
//
// [cache] - Content-addressed result caching with file, redis, mongo, and
// null backends.
//
// [config] - TOML configuration (vlb.toml) for the server address, cache
// backend, and default link policy.
//
// [pipeline] - The shared normalize → validate → render pipeline used by
// both the CLI and the HTTP API.
//
// [schema]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema
// [geometry]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry
// [gridarea]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/gridarea
// [transform]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/transform
// [validate]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate
// [linkgroup]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup
// [pipeline]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/cache
// [config]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/config
// [render/linkdot]: https://pkg.go.dev/github.com/jhlee0409/visual-layout-builder-sub001/pkg/render/linkdot
package pkg
