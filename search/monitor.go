package search

import "github.com/poiesic/docfind/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterQueryNormalization(terms []string)
	AfterDocumentScan(id core.ID, candidates []*core.SearchResult)
	AfterThresholdFilter(kept []*core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                   {}
func (n *noopMonitor) AfterQueryNormalization(_ []string)               {}
func (n *noopMonitor) AfterDocumentScan(_ core.ID, _ []*core.SearchResult) {}
func (n *noopMonitor) AfterThresholdFilter(_ []*core.SearchResult)      {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                    {}
