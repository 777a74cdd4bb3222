package resource

// AuthorshipLookup maps an authorship id to the ordered author names.
type AuthorshipLookup map[string][]string

// Authors returns the authors registered under id.
func (l AuthorshipLookup) Authors(id string) ([]string, bool) {
	authors, ok := l[id]
	if !ok || len(authors) == 0 {
		return nil, false
	}
	return authors, true
}

// List is a project list with its nodes.
type List struct {
	Name  string
	IRI   string
	Nodes []ListNode
}

// ListNode is one node of a project list.
type ListNode struct {
	Name string
	IRI  string
}

// ListKey addresses a list node by list name and node name. A node given
// by its IRI has an empty List.
type ListKey struct {
	List string
	Node string
}

// ListLookup resolves list references to node IRIs.
type ListLookup struct {
	nodes map[ListKey]string
}

// NewListLookup registers every node of lists twice: under its list and
// node name, and under its bare IRI.
func NewListLookup(lists []List) *ListLookup {
	l := &ListLookup{nodes: make(map[ListKey]string)}
	for _, list := range lists {
		for _, node := range list.Nodes {
			l.nodes[ListKey{List: list.Name, Node: node.Name}] = node.IRI
			l.nodes[ListKey{Node: node.IRI}] = node.IRI
		}
	}
	return l
}

// Resolve returns the node IRI for ref.
func (l *ListLookup) Resolve(ref ListRef) (string, bool) {
	if l == nil {
		return "", false
	}
	iri, ok := l.nodes[ListKey{List: ref.List, Node: ref.Node}]
	if ok {
		return iri, true
	}
	iri, ok = l.nodes[ListKey{Node: ref.Node}]
	return iri, ok
}

// Len returns the number of registered keys.
func (l *ListLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}
