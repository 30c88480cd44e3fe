// Package graph provides the plug layer of a node graph: named, typed
// value slots that a host graph attaches to nodes. Plugs carry a
// direction (input or output), a flag set, and an optional fixed child
// layout; composite plugs such as Transform2dPlug derive values (a 3x3
// matrix) from their children.
package graph
