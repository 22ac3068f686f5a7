package dispatcher

import (
	"net/url"
	"strconv"

	"github.com/you-humble/partexplorer/internal/model"
)

// requestBuilder assembles a model.CatalogRequest. Every method returns a new
// builder so partially built requests can be shared safely.
type requestBuilder struct {
	endpoint model.Endpoint
	path     string
	params   url.Values
	toggles  model.Toggles
}

func searchRequest() *requestBuilder {
	return &requestBuilder{
		endpoint: model.EndpointSearch,
		path:     "/search",
		params:   url.Values{},
	}
}

func plateRequest(plate string) *requestBuilder {
	return &requestBuilder{
		endpoint: model.EndpointPlate,
		path:     "/plate-search/" + url.PathEscape(plate),
		params:   url.Values{},
	}
}

// Set adds key=value. Empty values are skipped.
func (b *requestBuilder) Set(key, value string) *requestBuilder {
	if value == "" {
		return b
	}
	nb := b.clone()
	nb.params.Set(key, value)
	return nb
}

// Flag adds key=true when on.
func (b *requestBuilder) Flag(key string, on bool) *requestBuilder {
	if !on {
		return b
	}
	return b.Set(key, strconv.FormatBool(true))
}

func (b *requestBuilder) Int(key string, v int) *requestBuilder {
	return b.Set(key, strconv.Itoa(v))
}

func (b *requestBuilder) Toggles(t model.Toggles) *requestBuilder {
	nb := b.clone()
	nb.toggles = t
	return nb
}

func (b *requestBuilder) Build() model.CatalogRequest {
	c := b.clone()
	return model.CatalogRequest{
		Endpoint: c.endpoint,
		Path:     c.path,
		Params:   c.params,
		Toggles:  c.toggles,
	}
}

func (b *requestBuilder) clone() *requestBuilder {
	params := make(url.Values, len(b.params))
	for k, v := range b.params {
		params[k] = append([]string(nil), v...)
	}
	return &requestBuilder{
		endpoint: b.endpoint,
		path:     b.path,
		params:   params,
		toggles:  b.toggles,
	}
}
