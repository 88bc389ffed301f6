// Package view is the navigation state machine: a fixed set of named
// screens plus the rule that anything unrecognized lands on the shop.
package view

import "strings"

type View string

const (
	Shop      View = "shop"
	Cart      View = "cart"
	Checkout  View = "checkout"
	Login     View = "login"
	Register  View = "register"
	TestCases View = "test-cases"
	Success   View = "success"
)

// Default is the initial view and the fallback for unknown tokens.
const Default = Shop

var known = map[View]bool{
	Shop: true, Cart: true, Checkout: true, Login: true,
	Register: true, TestCases: true, Success: true,
}

// Parse maps a navigation token to a view. Tokens arrive as URL path
// segments or legacy hash fragments ("#/cart?x=y"); leading markers and
// query suffixes are ignored. Empty or unrecognized tokens resolve to the
// default view, never an error.
func Parse(token string) View {
	token = strings.TrimPrefix(token, "#")
	token = strings.Trim(token, "/")
	token, _, _ = strings.Cut(token, "?")
	v := View(token)
	if !known[v] {
		return Default
	}
	return v
}

// Path is the canonical URL path serving this view.
func (v View) Path() string { return "/" + string(v) }
