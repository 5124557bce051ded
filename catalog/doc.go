// Package catalog implements the dataset registry data model: Dataset leaf
// records, ordered Bunch trees with dotted-path traversal, flattening,
// fuzzy name queries and attribute filtering, plus the schema-validated
// loader that builds a tree from a nested JSON or YAML document.
package catalog
