// Package api inspects the HTTP surface of a Krait program: which routes
// it declares, whether they clash, and a per-method summary.
package api

import (
	"errors"
	"fmt"
	"strings"

	protocol "github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
)

var methodOrder = []ast.HTTPMethod{ast.MethodGet, ast.MethodPost, ast.MethodPut, ast.MethodDelete}

type Info struct {
	Routes  []*ast.Route
	Methods []ast.HTTPMethod // distinct, first-seen order
}

func NewInfo(routes []*ast.Route) Info {
	info := Info{Routes: routes}
	seen := make(map[ast.HTTPMethod]bool)
	for _, r := range routes {
		if !seen[r.Method] {
			seen[r.Method] = true
			info.Methods = append(info.Methods, r.Method)
		}
	}
	return info
}

func (i Info) HasRoutes() bool { return len(i.Routes) > 0 }

func (i Info) Count() int { return len(i.Routes) }

// Describe is a one-line summary of the program kind.
func (i Info) Describe() string {
	if !i.HasRoutes() {
		return "console application"
	}
	methods := make([]string, len(i.Methods))
	for idx, m := range i.Methods {
		methods[idx] = m.String()
	}
	noun := "routes"
	if i.Count() == 1 {
		noun = "route"
	}
	return fmt.Sprintf("REST API (%d %s, methods: %s)", i.Count(), noun, strings.Join(methods, ", "))
}

// Validate reports duplicate method+path pairs and paths that do not start
// with '/'. Every problem is reported, not just the first.
func Validate(routes []*ast.Route) []*protocol.Diagnostic {
	var diags []*protocol.Diagnostic
	first := make(map[string]*ast.Route)
	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			diags = append(diags, common.ErrorDiag(fmt.Sprintf("route path must start with '/': %s", r.Path), r.Span()))
		}
		key := r.Key()
		if prev, ok := first[key]; ok {
			diags = append(diags, common.ErrorDiag(
				fmt.Sprintf("duplicate route %s (first declared at line %d)", key, prev.Span().LineStart), r.Span()))
			continue
		}
		first[key] = r
	}
	return diags
}

// Check is Validate as an error, nil when the routes are fine.
func Check(src string, routes []*ast.Route) error {
	var errs []error
	for _, d := range Validate(routes) {
		errs = append(errs, common.NewDiagError(src, d))
	}
	return errors.Join(errs...)
}

type Stats struct {
	Total    int
	ByMethod map[ast.HTTPMethod]int
}

func NewStats(routes []*ast.Route) Stats {
	s := Stats{Total: len(routes), ByMethod: make(map[ast.HTTPMethod]int)}
	for _, r := range routes {
		s.ByMethod[r.Method]++
	}
	return s
}

// Format renders the stats for the terminal; url is where the server
// listens.
func (s Stats) Format(url string) string {
	if s.Total == 0 {
		return "API stats: no routes\n"
	}
	var sb strings.Builder
	sb.WriteString("API stats:\n")
	fmt.Fprintf(&sb, "  total routes: %d\n", s.Total)
	for _, m := range methodOrder {
		if n := s.ByMethod[m]; n > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", m, n)
		}
	}
	fmt.Fprintf(&sb, "  host: %s\n", url)
	return sb.String()
}
