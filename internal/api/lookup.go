package api

import (
	"context"
	"net/url"

	"blueace_booking_client/platform/apperr"
)

// Autocomplete fetches address suggestions for a partial query.
// Callers treat failures as a degraded empty list; the rate limiter keeps
// keystroke bursts from flooding the backend beyond what debouncing catches.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]AddressSuggestion, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "rate limit wait", err)
	}

	path := "/autocomplete?input=" + url.QueryEscape(input)

	var suggestions []AddressSuggestion
	if err := c.getJSON(ctx, path, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

// Geocode resolves a selected address to coordinates. Identical in-flight
// lookups are collapsed into one request.
func (c *Client) Geocode(ctx context.Context, address string) (Coordinates, error) {
	result, err, _ := c.geocodes.Do(address, func() (interface{}, error) {
		path := "/geocode?address=" + url.QueryEscape(address)

		var coords Coordinates
		if err := c.getJSON(ctx, path, &coords); err != nil {
			return Coordinates{}, err
		}
		return coords, nil
	})
	if err != nil {
		return Coordinates{}, err
	}

	return result.(Coordinates), nil
}
