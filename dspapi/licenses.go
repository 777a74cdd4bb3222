package dspapi

import (
	"context"
	"encoding/json"
	"fmt"
)

type licensesResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// EnabledLicenses returns the IRIs of the licenses enabled for the project.
func (c *Client) EnabledLicenses(ctx context.Context, shortcode string) ([]string, error) {
	path := fmt.Sprintf("admin/projects/shortcode/%s/legal-info/licenses?page=1&page-size=100&order=Asc&showOnlyEnabled=true", shortcode)
	body, err := c.get(ctx, c.endpoint(path), "application/json", "licenses of project "+shortcode)
	if err != nil {
		return nil, err
	}
	var resp licensesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewFatalError(fmt.Errorf("decode licenses response: %w", err))
	}
	iris := make([]string, 0, len(resp.Data))
	for _, l := range resp.Data {
		iris = append(iris, l.ID)
	}
	return iris, nil
}
