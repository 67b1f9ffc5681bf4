// Package registry dispatches a category byte to the Category Record
// codec (a record.Definition constructor) registered for it, so the
// packet-decoding engine never needs to change when a new category
// catalog is added -- only a new registration call. Dispatch is runtime
// registration rather than a closed set of known categories, since the
// engine must accept catalogs it was not built knowing about.
package registry
