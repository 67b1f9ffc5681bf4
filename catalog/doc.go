// Package catalog introspects a category's Record definition for tests and
// debugging: which FRNs it defines, and which are currently present on a
// given instance. It does not participate in decode/encode.
package catalog
