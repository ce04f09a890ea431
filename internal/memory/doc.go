// Package memory provides object recycling for single-writer data
// structures. A Pool keeps a bounded freelist of released objects and
// hands them back before allocating new ones.
//
// Pools are not safe for concurrent use; they live under the same
// single-writer rule as the structure that owns them.
package memory
