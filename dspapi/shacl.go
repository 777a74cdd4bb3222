package dspapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// ValidateSHACL posts the shapes and the data as Turtle to the SHACL endpoint
// and returns the report as Turtle. label names the pass in error messages.
func (c *Client) ValidateSHACL(ctx context.Context, label, shaclTTL, dataTTL string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range []struct{ name, content string }{
		{"shacl.ttl", shaclTTL},
		{"data.ttl", dataTTL},
	} {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.name, f.name))
		h.Set("Content-Type", turtle)
		part, err := w.CreatePart(h)
		if err != nil {
			return "", NewFatalError(fmt.Errorf("create multipart part: %w", err))
		}
		if _, err := io.WriteString(part, f.content); err != nil {
			return "", NewFatalError(fmt.Errorf("write multipart part: %w", err))
		}
	}
	if err := w.Close(); err != nil {
		return "", NewFatalError(fmt.Errorf("close multipart body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("shacl/validate"), &buf)
	if err != nil {
		return "", NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", turtle)

	c.logger.Debug("Posting graphs for SHACL validation", "pass", label,
		"shacl_bytes", len(shaclTTL), "data_bytes", len(dataTTL))

	resp, err := c.shaclClient.Do(req)
	if err != nil {
		return "", NewFatalError(fmt.Errorf("SHACL %s validation request failed: %w", label, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return "", NewFatalError(fmt.Errorf("read SHACL report: %w", err))
	}
	if int64(len(body)) > c.maxBody {
		err := NewFatalError(&ResponseTooLargeError{
			Request: fmt.Sprintf("POST files for SHACL %s validation", label),
			Limit:   c.maxBody,
		})
		c.logger.Error("SHACL validation report too large", "pass", label, "error", err)
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := NewFatalError(&ResponseError{
			Request:    fmt.Sprintf("POST files for SHACL %s validation", label),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		})
		c.logger.Error("SHACL validation failed", "pass", label, "error", err)
		return "", err
	}
	return string(body), nil
}
