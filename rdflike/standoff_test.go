package rdflike

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

func richtext(s string) resource.ParsedValue {
	return resource.NewValue(ontoNS+"testRichtext", knora.ValueTypeRichtext, s)
}

func TestStandoffLinks(t *testing.T) {
	tests := []struct {
		name   string
		values []resource.ParsedValue
		want   []PropertyObject
	}{
		{
			name:   "duplicate ids collapse",
			values: []resource.ParsedValue{richtext(`<a href="IRI:abc:IRI">x</a> and <a href="IRI:abc:IRI">y</a>`)},
			want:   []PropertyObject{{Property: PropStandoffLink, Value: "abc", ObjectType: ObjectInternalID}},
		},
		{
			name: "across values",
			values: []resource.ParsedValue{
				richtext(`<a class="salsah-link" href="IRI:b_id:IRI">x</a>`),
				richtext(`<a class="salsah-link" href="IRI:a_id:IRI">y</a>`),
			},
			want: []PropertyObject{
				{Property: PropStandoffLink, Value: "a_id", ObjectType: ObjectInternalID},
				{Property: PropStandoffLink, Value: "b_id", ObjectType: ObjectInternalID},
			},
		},
		{
			name:   "database iri",
			values: []resource.ParsedValue{richtext(`<a class="salsah-link" href="http://rdfh.ch/9999/DiAmYQzQSzC7cdTo6OJMYA">x</a>`)},
			want:   []PropertyObject{{Property: PropStandoffLink, Value: "http://rdfh.ch/9999/DiAmYQzQSzC7cdTo6OJMYA", ObjectType: ObjectIRI}},
		},
		{
			name:   "simple text is ignored",
			values: []resource.ParsedValue{resource.NewValue(ontoNS+"testSimpleText", knora.ValueTypeSimpleText, `href="IRI:abc:IRI"`)},
			want:   []PropertyObject{},
		},
		{
			name:   "external links are ignored",
			values: []resource.ParsedValue{richtext(`<a href="https://dasch.swiss">x</a>`)},
			want:   []PropertyObject{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, standoffLinks(tt.values))
		})
	}
}
