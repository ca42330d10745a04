package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fwojciec/itinerary"
	"github.com/temoto/robotstxt"
)

// Ensure RobotsChecker implements itinerary.RobotsChecker at compile time.
var _ itinerary.RobotsChecker = (*RobotsChecker)(nil)

// robotsAgent is the user-agent group consulted in robots.txt.
const robotsAgent = "*"

// RobotsChecker evaluates the wildcard user-agent group of a site's robots.txt.
type RobotsChecker struct {
	client *http.Client
}

// NewRobotsChecker creates a new RobotsChecker with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewRobotsChecker(client *http.Client) *RobotsChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &RobotsChecker{client: client}
}

// Allowed reports whether robots.txt permits fetching rawURL. Rules are
// matched against the path and query, so wildcard and end-anchored patterns
// apply. A missing, failing or unparsable robots.txt allows everything.
func (c *RobotsChecker) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, itinerary.Errorf(itinerary.EINVALID, "invalid URL: %v", err)
	}

	data, err := fetchRobots(ctx, c.client, u)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, nil
	}
	if data == nil {
		return true, nil
	}

	return data.TestAgent(u.RequestURI(), robotsAgent), nil
}

// fetchRobots retrieves and parses robots.txt for the site of u.
// Returns nil data without error when the site serves no robots.txt.
func fetchRobots(ctx context.Context, client *http.Client, u *url.URL) (*robotstxt.RobotsData, error) {
	robotsURL := u.ResolveReference(&url.URL{Path: "/robots.txt"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// robotstxt treats 5xx as disallow-all; only 2xx bodies carry rules here.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil
	}

	return robotstxt.FromResponse(resp)
}
