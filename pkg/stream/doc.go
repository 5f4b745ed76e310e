// Package stream serves rendered nodes over HTTP.
//
// The response is written chunk by chunk as the renderer produces it and
// flushed after every chunk, so the browser can start parsing the head
// while lazy parts of the body are still being computed. Rendering runs in
// asynchronous mode under the request context: futures and channels are
// allowed, and a client disconnect stops the render at the next chunk.
//
//	r := chi.NewRouter()
//	stream.Mount(r, "/orders", func(r *http.Request) node.Node {
//		return ordersPage(r.Context())
//	}, stream.WithObserver(middleware.Prometheus()))
//
// Headers are sent once the first chunk is available. A render that fails
// before that point gets a 500 response; a render that fails later can only
// be logged, since the status line is already on the wire.
package stream
