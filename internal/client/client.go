package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bird-service/internal/domain/birds"
	"bird-service/internal/platform/httpclient"
)

// Client habla con la API HTTP de birds. Lo usa el CLI.
type Client struct {
	http *httpclient.Client
}

func New(baseURL string, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func birdPath(id string) string {
	return "/birds/" + url.PathEscape(id)
}

func (c *Client) Get(ctx context.Context, id string) (birds.Bird, error) {
	if strings.TrimSpace(id) == "" {
		return birds.Bird{}, birds.ErrNotFound
	}

	var rec birds.Record
	if err := c.http.DoJSON(ctx, http.MethodGet, birdPath(id), nil, &rec); err != nil {
		return birds.Bird{}, translate(err)
	}
	return birds.FromRecord(rec), nil
}

func (c *Client) List(ctx context.Context) ([]birds.Bird, error) {
	var recs []birds.Record
	if err := c.http.DoJSON(ctx, http.MethodGet, "/birds", nil, &recs); err != nil {
		return nil, translate(err)
	}

	out := make([]birds.Bird, 0, len(recs))
	for _, rec := range recs {
		out = append(out, birds.FromRecord(rec))
	}
	return out, nil
}

// Put guarda el bird. Sin id hace POST y el servidor asigna uno; con id hace PUT.
func (c *Client) Put(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	rec := b.Record()

	var out birds.Record
	var err error
	if strings.TrimSpace(rec.ID) == "" {
		err = c.http.DoJSON(ctx, http.MethodPost, "/birds", rec, &out)
	} else {
		err = c.http.DoJSON(ctx, http.MethodPut, birdPath(rec.ID), rec, &out)
	}
	if err != nil {
		return birds.Bird{}, translate(err)
	}
	return birds.FromRecord(out), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return birds.ErrNotFound
	}
	return translate(c.http.DoJSON(ctx, http.MethodDelete, birdPath(id), nil, nil))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return birds.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("birds api: %w", err)
}
