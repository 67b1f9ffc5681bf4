// Package record implements the category-agnostic FSPEC-directed decode
// and encode loop shared by every ASTERIX category: read the FSPEC, walk
// FRNs in ascending order invoking the catalog's decoder for each set
// bit; on encode, finalize (recompute) the FSPEC from which Data Items
// are present, emit it, then emit each present item in FRN order.
//
// A category package (cat034, cat048) supplies a Definition -- a record
// struct whose Slots method exposes one Slot per Data Item FRN, each
// wrapping that field's presence test and its Decode/Encode methods. The
// loop itself never needs to change when a new category catalog is
// registered.
package record
