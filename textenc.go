// Package textenc translates sets of strings into numeric representations
// consumable by downstream numeric algorithms.
//
// There are 4 main sub-packages:
//
//   - dictionary: the bidirectional token<->label store shared by all encoding policies.
//   - encoding: the StringEncoding orchestrator and its built-in encoding policies.
//   - tokenizers: tokenizers satisfying the contract the encoder consumes.
//   - output: dense and sparse numeric sinks for fixed-shape encoding output.
package textenc

// Version of the library.
// Manually kept in sync with project releases.
var Version = "v0.0.0-dev"
