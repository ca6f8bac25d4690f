// Package schema holds the HCL decoding targets for floor configuration
// files. The structs mirror the file syntax one to one; translation into the
// format-agnostic config model happens in the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Floor represents a `floor` block from a configuration file:
//
//	floor "north_hall" {
//	  layout    = file("north.txt")
//	  marker    = "@"
//	  threshold = 3
//	}
//
// Attributes are kept as expressions so they can be evaluated against the
// loader's evaluation context. gohcl treats every expression field as
// optional: an absent attribute, layout included, decodes to an expression
// yielding null. The loader rejects a floor whose layout is null.
type Floor struct {
	Name      string         `hcl:"name,label"`
	Layout    hcl.Expression `hcl:"layout"`
	Marker    hcl.Expression `hcl:"marker,optional"`
	Threshold hcl.Expression `hcl:"threshold,optional"`
}

// FloorConfig represents the top-level structure of a configuration file,
// containing all declared floors.
type FloorConfig struct {
	Floors []*Floor `hcl:"floor,block"`
}
