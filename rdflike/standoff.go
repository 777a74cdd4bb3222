package rdflike

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

var (
	internalLinkRe = regexp.MustCompile(`href="IRI:(.*?):IRI"`)
	iriLinkRe      = regexp.MustCompile(`href="(` + regexp.QuoteMeta(knora.ResourceIRIPrefix) + `[^"]*)"`)
)

// standoffLinks collects the distinct link targets embedded in the richtext
// values of a resource. Targets are returned sorted.
func standoffLinks(values []resource.ParsedValue) []PropertyObject {
	targets := make(map[string]TripleObjectType)
	for _, v := range values {
		if v.Type != knora.ValueTypeRichtext {
			continue
		}
		text, ok := v.TextPayload()
		if !ok || !strings.Contains(text, "href=") {
			continue
		}
		for _, m := range internalLinkRe.FindAllStringSubmatch(text, -1) {
			targets[m[1]] = ObjectInternalID
		}
		for _, m := range iriLinkRe.FindAllStringSubmatch(text, -1) {
			targets[m[1]] = ObjectIRI
		}
	}

	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	links := make([]PropertyObject, 0, len(keys))
	for _, k := range keys {
		links = append(links, PropertyObject{Property: PropStandoffLink, Value: k, ObjectType: targets[k]})
	}
	return links
}
