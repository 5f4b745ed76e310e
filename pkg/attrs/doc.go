// Package attrs implements the attribute model of htgo elements.
//
// Attributes reach an element through three mechanisms, merged in increasing
// priority:
//
//  1. an id/class shorthand string such as "#main.card.wide"
//  2. Map values, applied left to right
//  3. Attr pairs (keyword style), whose names are normalized by HTMLName
//
// Merge serializes the result immediately. The returned List keeps the
// pre-escaped attribute string together with the per-name fragments, so a
// later Merge on the same List overrides names in place instead of
// re-serializing everything.
//
// Values follow these rules:
//   - nil and false omit the attribute (and remove an earlier one)
//   - true renders the bare name: <button disabled>
//   - text, integers and safe markup render as name="escaped"
//   - "class" accepts classnames-style input, see ClassNames
package attrs
