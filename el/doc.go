// Package el is the tag namespace of htgo.
//
// Every known HTML element is a package-level *node.Element. Elements are
// immutable, so the same value is reused everywhere:
//
//	import . "github.com/vango-dev/htgo/el"
//
//	page := Html.With(Lang("en")).Children(
//		Head.Children(Title.Children("Orders")),
//		Body.Children(
//			Div.With("#orders.list").Children(
//				Range(orders, func(o Order) Node {
//					return Div.With(".order", DataAttr("id", o.ID)).Children(o.Name)
//				}),
//			),
//		),
//	)
//
// Names that collide follow a suffix convention: LinkEl, DataElement, Map_
// and Time_ for elements; TitleAttr, StyleAttr, FormAttr and friends for
// attributes. Custom elements are created with Tag.
package el
