// Package node implements the element model and the lazy renderer.
//
// Elements are immutable builders. With attaches attributes and Children
// attaches content; both return a new value, so package-level tag singletons
// can be shared freely:
//
//	page := el.Div.With("#main.card", attrs.A("data_id", 7)).Children(
//		el.H1.Children("Hello"),
//		func() node.Node { return expensiveList() },
//	)
//
// Nothing is evaluated until the tree is rendered. IterChunks pulls markup
// fragments one at a time, calling lazy children only when the walk reaches
// them; AIterChunks additionally resolves futures and channels and stops at
// the first chunk boundary after its context is cancelled.
//
// # Node shapes
//
//	nil, bool                         nothing
//	string                            escaped text
//	markup.Safe, template.HTML, HTMLer  emitted verbatim
//	int, uint and friends             decimal text
//	*Element, *Fragment, providers, consumers, Renderable
//	[]Node and other slices           flattened depth first ([]byte rejected)
//	iter.Seq[Node]                    reusable sequence
//	*Generator (see Once)             one-shot sequence
//	func() T, func() (T, error)       called when reached
//	*Future, <-chan Node              asynchronous rendering only
//
// Anything else is rejected with a type error naming the value.
package node
