package el

import (
	"github.com/vango-dev/htgo/pkg/attrs"
	"github.com/vango-dev/htgo/pkg/markup"
	"github.com/vango-dev/htgo/pkg/node"
)

// Type aliases for the primitives used by the DSL.
type Node = node.Node
type Element = node.Element
type Fragment = node.Fragment
type Values = node.Values
type Attr = attrs.Attr
type Attrs = attrs.Map
type Safe = markup.Safe
