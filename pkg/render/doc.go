// Package render contains the output backends for built polytopes.
//
// The only backend today is [pov], which emits data-only POV-Ray include
// files consumed by scene templates. Backends take a finished polytope
// and never mutate it, so several can render the same model.
//
// [pov]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/render/pov
package render
