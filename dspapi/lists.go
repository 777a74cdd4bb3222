package dspapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dasch-swiss/dspvalidate/resource"
)

type listsResponse struct {
	Lists []struct {
		ID string `json:"id"`
	} `json:"lists"`
}

type listNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Children []listNode `json:"children"`
}

type listResponse struct {
	List struct {
		ListInfo struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"listinfo"`
		Children []listNode `json:"children"`
	} `json:"list"`
}

// Lists fetches every list of the project with all of its nodes flattened in
// depth-first order.
func (c *Client) Lists(ctx context.Context, shortcode string) ([]resource.List, error) {
	body, err := c.get(ctx, c.endpoint("admin/lists?projectShortcode="+url.QueryEscape(shortcode)), "application/json", "all list IRIs")
	if err != nil {
		return nil, err
	}
	var all listsResponse
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, NewFatalError(fmt.Errorf("decode lists response: %w", err))
	}

	lists := make([]resource.List, 0, len(all.Lists))
	for _, l := range all.Lists {
		list, err := c.list(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (c *Client) list(ctx context.Context, iri string) (resource.List, error) {
	body, err := c.get(ctx, c.endpoint("admin/lists/"+url.QueryEscape(iri)), "application/json", "one list "+iri)
	if err != nil {
		return resource.List{}, err
	}
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return resource.List{}, NewFatalError(fmt.Errorf("decode list %s: %w", iri, err))
	}

	list := resource.List{Name: resp.List.ListInfo.Name, IRI: resp.List.ListInfo.ID}
	var walk func([]listNode)
	walk = func(nodes []listNode) {
		for _, n := range nodes {
			list.Nodes = append(list.Nodes, resource.ListNode{Name: n.Name, IRI: n.ID})
			walk(n.Children)
		}
	}
	walk(resp.List.Children)
	return list, nil
}
