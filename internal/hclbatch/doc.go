// Package hclbatch is the HCL implementation of config.Loader. It reads
// `record` blocks from .hcl files and turns them into record.Record values.
//
// A record block has two required attributes:
//
//	record {
//	  value  = 123
//	  opaque = "hello"          # string, UTF-8 bytes of its NFC form
//	}
//
//	record {
//	  value  = 456
//	  opaque = [119, 111, 114]  # list of byte values 0-255
//	}
//
// Expressions are evaluated with a small set of go-cty standard functions
// (upper, lower, format, join, concat, range and friends).
package hclbatch
