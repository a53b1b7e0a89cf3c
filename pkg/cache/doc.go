// Package cache provides a small generic LRU cache safe for concurrent use.
//
//	c := cache.NewLRU[string, []byte](128)
//	png, err := c.GetOrLoad(uri, func() ([]byte, error) {
//		return qrcode.Encode(uri)
//	})
//
// A cache with a non-positive capacity stores nothing, so callers can turn
// caching off through configuration without a separate code path.
package cache
