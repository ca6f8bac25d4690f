// Package hcl provides the concrete HCL implementation of the floor
// configuration Loader defined in the `config` package. It is responsible for
// file discovery, parsing, expression evaluation and HCL-to-model
// translation, including CTY-to-Go conversion of attribute values.
package hcl
