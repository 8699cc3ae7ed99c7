package channel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/kroma-labs/wire-go/urlbuilder"
	"github.com/kroma-labs/wire-go/wire"
)

// coalescingChannel deduplicates concurrent identical in-flight calls
// via singleflight, grounded on sentinel-go's GenerateCoalesceKey +
// perClientCoalesceGroup. Only safe for endpoints whose responses are
// safe to share across callers (typically idempotent GETs); callers
// opt in per Channel construction, not per call.
type coalescingChannel struct {
	inner Channel
	group *singleflight.Group
}

// NewCoalescingChannel wraps inner so concurrent calls to the same
// endpoint+request are collapsed into a single inner.Execute; all
// waiters receive the same resolved Response/error.
func NewCoalescingChannel(inner Channel) Channel {
	return &coalescingChannel{inner: inner, group: &singleflight.Group{}}
}

func (c *coalescingChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		key := coalesceKey(endpoint, request)
		v, err, _ := c.group.Do(key, func() (interface{}, error) {
			return c.inner.Execute(ctx, endpoint, request).Get(ctx)
		})
		if err != nil {
			return nil, err
		}
		return v.(*wire.Response), nil
	})
}

// coalesceKey derives a stable dedup key from method, rendered path,
// path params, and query, plus a hash of the body if present; headers
// are not part of the key. Grounded on GenerateCoalesceKey's
// method+URL+sorted-query+body-hash recipe.
func coalesceKey(endpoint wire.Endpoint, request *wire.Request) string {
	var parts []string
	parts = append(parts, endpoint.HTTPMethod())

	path := urlbuilder.New("")
	if err := endpoint.RenderPath(request.PathParams, path); err == nil {
		parts = append(parts, path.String())
	}

	pathKeys := make([]string, 0, len(request.PathParams))
	for k := range request.PathParams {
		pathKeys = append(pathKeys, k)
	}
	sort.Strings(pathKeys)
	for _, k := range pathKeys {
		parts = append(parts, k+"="+request.PathParams[k])
	}

	if request.Query != nil {
		queryKeys := append([]string(nil), request.Query.Keys()...)
		sort.Strings(queryKeys)
		for _, k := range queryKeys {
			values := append([]string(nil), request.Query.Get(k)...)
			sort.Strings(values)
			for _, v := range values {
				parts = append(parts, k+"="+v)
			}
		}
	}

	if request.Body != nil {
		if content, err := request.Body.Content(); err == nil {
			data, _ := io.ReadAll(content)
			content.Close()
			sum := sha256.Sum256(data)
			parts = append(parts, hex.EncodeToString(sum[:]))
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
