package model

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

type Endpoint string

const (
	EndpointSearch Endpoint = "search"
	EndpointPlate  Endpoint = "plate"
)

const cacheKeyPrefix = "partexplorer:search:"

// CatalogRequest is a fully formed call against the remote catalog.
type CatalogRequest struct {
	Endpoint Endpoint
	Path     string
	Params   url.Values
	Toggles  Toggles
}

// URL resolves the request against base, e.g. "http://catalog:8080/api/v1".
func (r CatalogRequest) URL(base string) string {
	u := strings.TrimRight(base, "/") + r.Path
	if len(r.Params) == 0 {
		return u
	}
	return u + "?" + r.Params.Encode()
}

// CacheKey is a content hash over path, sorted parameters and toggles. Facet
// selections never reach a CatalogRequest, so they never reach the key.
func (r CatalogRequest) CacheKey() string {
	var b strings.Builder
	b.WriteString(string(r.Endpoint))
	b.WriteByte('|')
	b.WriteString(r.Path)
	b.WriteByte('?')
	b.WriteString(r.Params.Encode())
	b.WriteString("|obsolete=")
	b.WriteString(strconv.FormatBool(r.Toggles.IncludeObsolete))
	b.WriteString("|instock=")
	b.WriteString(strconv.FormatBool(r.Toggles.InStockOnly))

	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64String(b.String()))
}

// RequestToken identifies one dispatch. Seq grows monotonically per manager.
type RequestToken struct {
	Seq uint64
	ID  uuid.UUID
}

func NewRequestToken(seq uint64) RequestToken {
	return RequestToken{Seq: seq, ID: uuid.New()}
}

func (t RequestToken) IsZero() bool { return t.Seq == 0 }

func (t RequestToken) Same(other RequestToken) bool {
	return t.Seq == other.Seq && t.ID == other.ID
}

// FetchResult is a completed dispatch.
type FetchResult struct {
	Token     RequestToken
	Request   CatalogRequest
	Entry     CacheEntry
	FromCache bool
}
