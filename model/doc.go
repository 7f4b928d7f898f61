// Package model defines stable boundary types for API layers.
//
// Leaf identity (paths, values and their field elements) is unaffected by any
// projection. These structs are the only types intended for direct JSON
// serialization by consumers.
package model
