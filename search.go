package dataspec

import "github.com/reoring/dataspec/datapath"

// Search resolves a DataPath expression against a data tree. It is a thin
// wrapper over datapath.Resolve for callers that only import the root
// package.
func Search(data any, path string) (any, error) {
	return datapath.Resolve(data, path)
}
