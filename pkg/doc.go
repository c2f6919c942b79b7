// Package pkg provides the core libraries for captain-arro animated arrow generation.
//
// # Overview
//
// Captain Arro turns a handful of configuration knobs into self-contained
// animated SVG arrow documents. The pkg directory is organized into four
// main areas:
//
//  1. [arrow], [scene], [render/arrow] - Domain logic (option types, SVG scene model, pattern generators)
//  2. [cache], [store] - Infrastructure (document cache, saved-arrow persistence)
//  3. [pipeline], [server] - Orchestration (options → generator → cached document, HTTP surface)
//  4. [errors], [observability], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow:
//
//	Options (CLI flags / preset file / HTTP query)
//	         ↓
//	    [pipeline] package (validate, per-pattern defaults, cache key)
//	         ↓
//	    [render/arrow] package (pattern geometry + animation)
//	         ↓
//	    [scene] package (SVG document assembly, id suffixing)
//	         ↓
//	    SVG output (file, stdout, HTTP response, store)
//
// # Quick Start
//
// Generate a flow arrow directly:
//
//	import (
//	    "github.com/helgeesch/captain-arro/pkg/arrow"
//	    arrowrender "github.com/helgeesch/captain-arro/pkg/render/arrow"
//	)
//
//	speed, _ := arrow.NewSpeed(20, 0)
//	gen, _ := arrowrender.NewFlow(arrowrender.FlowConfig{Speed: speed})
//	svg := gen.Generate()
//
// Or go through the pipeline to get validation, defaults, and caching:
//
//	import "github.com/helgeesch/captain-arro/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	svg, err := runner.Generate(ctx, pipeline.Options{
//	    Pattern:       "flow",
//	    SpeedPxPerSec: 20,
//	})
//
// # Main Packages
//
// ## Domain Logic
//
// [arrow] - Shared option vocabulary: pattern, direction, and orientation
// string types with parsing and validation, plus the Speed sum type (pixels
// per second or a fixed duration, never both).
//
// [scene] - Minimal SVG scene model. Documents hold defs (gradients, masks,
// clip paths), style rules, keyframes, and positioned elements; rendering
// applies an id suffix at every definition and url() reference so multiple
// documents can share a page.
//
// [render/arrow] - The four pattern generators (flow, spotlight-flow,
// spread, spotlight-spread) behind one Pattern interface, with geometry and
// layout helpers in the [render/arrow/geom] and [render/arrow/layout]
// subpackages.
//
// ## Infrastructure
//
// [cache] - Document cache interface with file, Redis, and null
// implementations, content-hash keys, and retry helpers.
//
// [store] - Saved-arrow persistence (Record CRUD) with file and MongoDB
// backends.
//
// ## Orchestration
//
// [pipeline] - Flat Options struct shared by every entry point, per-pattern
// defaults, and the Runner that renders through the cache. Ensures CLI,
// batch, and HTTP behavior stay identical.
//
// [server] - chi-based HTTP service exposing generation and the saved-arrow
// store.
//
// ## Cross-Cutting
//
// [errors] - Structured error codes (INVALID_*, *_NOT_FOUND, *_UNAVAILABLE)
// with wrapping and user-facing messages.
//
// [observability] - Pluggable hook registry for generation, cache, and HTTP
// events.
//
// [buildinfo] - ldflags-injected version information.
package pkg
