// Package wsstream streams rendered chunks over a WebSocket.
//
// Each chunk produced by the asynchronous renderer is sent as one text
// frame. When the render completes the server closes the connection with a
// normal closure; when it fails the close frame carries code 1011 and the
// error text. A client that disconnects cancels the render.
//
//	r.Handle("/live", wsstream.Handler(func(r *http.Request) node.Node {
//	    return pages.Dashboard(r)
//	}))
package wsstream
