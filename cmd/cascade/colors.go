package main

import (
	"github.com/fatih/color"

	"github.com/signadot/cascade/node"
)

// colors maps each node.Type to the SprintfFunc used to render its
// values when color output is enabled.
type colors struct {
	byType map[node.Type]func(string, ...any) string
	field  func(string, ...any) string
	punct  func(string, ...any) string
}

func newColors() *colors {
	c := &colors{
		byType: map[node.Type]func(string, ...any) string{
			node.NullType:   color.RGB(168, 0, 196).SprintfFunc(),
			node.ValueType:  color.RGB(8, 196, 16).SprintfFunc(),
			node.ArrayType:  color.RGB(196, 168, 128).SprintfFunc(),
			node.ObjectType: color.RGB(128, 168, 196).SprintfFunc(),
		},
		field: color.RGB(196, 96, 16).SprintfFunc(),
		punct: color.RGB(255, 0, 196).SprintfFunc(),
	}
	return c
}

func (c *colors) sprintType(t node.Type, s string) string {
	if c == nil {
		return s
	}
	if f, ok := c.byType[t]; ok {
		return f(s)
	}
	return s
}

func (c *colors) sprintField(s string) string {
	if c == nil {
		return s
	}
	return c.field(s)
}

func (c *colors) sprintPunct(s string) string {
	if c == nil {
		return s
	}
	return c.punct(s)
}
