// Package config defines the format-agnostic contract for loading a batch of
// records from configuration files.
//
// The app package depends only on the Loader interface. The HCL
// implementation lives in the hclbatch package.
package config
