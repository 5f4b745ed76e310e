// Package demo holds the example pages served and rendered by the htgo
// command. They double as an end-to-end exercise of the builder: contexts,
// components, lazy children, futures and channels all appear somewhere.
package demo
