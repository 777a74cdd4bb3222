package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLists() []List {
	return []List{
		{
			Name: "firstList",
			IRI:  "http://rdfh.ch/lists/9999/list",
			Nodes: []ListNode{
				{Name: "n1", IRI: "http://rdfh.ch/lists/9999/n1"},
				{Name: "n2", IRI: "http://rdfh.ch/lists/9999/n2"},
			},
		},
	}
}

func TestListLookupResolve(t *testing.T) {
	lookup := NewListLookup(testLists())
	require.Equal(t, 4, lookup.Len())

	tests := []struct {
		name    string
		ref     ListRef
		wantIRI string
		wantOK  bool
	}{
		{"by name", ListRef{List: "firstList", Node: "n1"}, "http://rdfh.ch/lists/9999/n1", true},
		{"by iri", ListRef{Node: "http://rdfh.ch/lists/9999/n2"}, "http://rdfh.ch/lists/9999/n2", true},
		{"iri with list name", ListRef{List: "firstList", Node: "http://rdfh.ch/lists/9999/n2"}, "http://rdfh.ch/lists/9999/n2", true},
		{"unknown node", ListRef{List: "firstList", Node: "n3"}, "", false},
		{"unknown list", ListRef{List: "other", Node: "n1"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iri, ok := lookup.Resolve(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIRI, iri)
		})
	}
}

func TestListLookupResolveIsStable(t *testing.T) {
	lookup := NewListLookup(testLists())
	ref := ListRef{List: "firstList", Node: "n2"}
	first, _ := lookup.Resolve(ref)
	second, _ := lookup.Resolve(ref)
	assert.Equal(t, first, second)
}

func TestNilListLookup(t *testing.T) {
	var lookup *ListLookup
	_, ok := lookup.Resolve(ListRef{List: "a", Node: "b"})
	assert.False(t, ok)
	assert.Zero(t, lookup.Len())
}

func TestAuthorshipLookup(t *testing.T) {
	lookup := AuthorshipLookup{
		"auth_1": {"Alice", "Bob"},
		"empty":  {},
	}

	authors, ok := lookup.Authors("auth_1")
	require.True(t, ok)
	assert.Equal(t, []string{"Alice", "Bob"}, authors)

	_, ok = lookup.Authors("empty")
	assert.False(t, ok)
	_, ok = lookup.Authors("missing")
	assert.False(t, ok)
}

func TestTextPayload(t *testing.T) {
	v := NewValue("http://0.0.0.0:3333/ontology/9999/onto/v2#hasInt", "integer", "5")
	got, ok := v.TextPayload()
	require.True(t, ok)
	assert.Equal(t, "5", got)

	v.Payload = Interval{Start: "1.0"}
	_, ok = v.TextPayload()
	assert.False(t, ok)
}
