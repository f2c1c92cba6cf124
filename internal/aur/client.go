// Package aur talks to the AUR RPC v5 endpoint.
package aur

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aurgo/aurgo-cli/internal/manager"
)

type pkg struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

type response struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Results []pkg  `json:"results"`
}

type Client struct {
	httpClient *http.Client
	rpcURL     string
}

func NewClient(rpcURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		rpcURL:     rpcURL,
	}
}

func (c *Client) Search(query string) ([]manager.Entry, error) {
	q := url.Values{}
	q.Set("v", "5")
	q.Set("type", "search")
	q.Set("arg", query)
	res, err := c.get(q)
	if err != nil {
		return nil, err
	}
	entries := make([]manager.Entry, 0, len(res.Results))
	for _, p := range res.Results {
		entries = append(entries, manager.Entry{
			Origin:  manager.OriginAUR,
			Name:    p.Name,
			Version: p.Version,
		})
	}
	return entries, nil
}

func (c *Client) Info(names []string) (map[string]string, error) {
	q := url.Values{}
	q.Set("v", "5")
	q.Set("type", "info")
	for _, n := range names {
		q.Add("arg[]", n)
	}
	res, err := c.get(q)
	if err != nil {
		return nil, err
	}
	versions := make(map[string]string, len(res.Results))
	for _, p := range res.Results {
		versions[p.Name] = p.Version
	}
	return versions, nil
}

func (c *Client) get(q url.Values) (*response, error) {
	resp, err := c.httpClient.Get(c.rpcURL + "/?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AUR RPC error: %d", resp.StatusCode)
	}
	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	if res.Type == "error" {
		return nil, fmt.Errorf("AUR RPC error: %s", res.Error)
	}
	return &res, nil
}
