// Package ast holds the syntax tree produced by the parser. Nodes are built
// once per translation and treated as read-only afterwards.
package ast

import "github.com/krait-lang/krait/frontend/lexer"

type Ident = lexer.TokIdent

type Ast struct {
	Items []Item
	Code  string
}

// Functions returns the function items in source order.
func (a *Ast) Functions() []*Function {
	var out []*Function
	for _, item := range a.Items {
		if f, ok := item.(*Function); ok {
			out = append(out, f)
		}
	}
	return out
}

// Routes returns the route items in source order.
func (a *Ast) Routes() []*Route {
	var out []*Route
	for _, item := range a.Items {
		if r, ok := item.(*Route); ok {
			out = append(out, r)
		}
	}
	return out
}

// Imports returns the import items in source order.
func (a *Ast) Imports() []*Import {
	var out []*Import
	for _, item := range a.Items {
		if i, ok := item.(*Import); ok {
			out = append(out, i)
		}
	}
	return out
}

// Function looks up a function by name.
func (a *Ast) Function(name string) *Function {
	for _, f := range a.Functions() {
		if f.Name.Raw == name {
			return f
		}
	}
	return nil
}
