package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// googleJWKSURL is the published location of Google's current signing keys.
const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// jwksRefreshInterval bounds how long a fetched key set is reused before the
// next verification triggers a refresh. Google rotates keys on the order of
// days, so an hour keeps the cache warm without risking stale keys.
const jwksRefreshInterval = time.Hour

// jwk is a single JSON Web Key as served by the JWKS endpoint. Only the RSA
// fields needed for RS256 verification are decoded.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

// jwksCache fetches and caches the identity provider's RSA public keys,
// keyed by key ID. It is safe for concurrent use; a refresh is serialized
// under the mutex so concurrent verifications trigger at most one fetch.
type jwksCache struct {
	client *resty.Client
	url    string

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func newJWKSCache(url string) *jwksCache {
	return &jwksCache{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

// Key returns the RSA public key for the given key ID, refreshing the cached
// key set if it is stale or does not contain kid. An unknown kid after a
// fresh fetch is an error: it means the token was signed with a key the
// provider no longer publishes.
func (c *jwksCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key, ok := c.keys[kid]; ok && time.Since(c.fetchedAt) < jwksRefreshInterval {
		return key, nil
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	key, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("signing key %q not found in JWKS", kid)
	}

	return key, nil
}

// refresh replaces the cached key set with the one currently served by the
// JWKS endpoint. Caller must hold the mutex.
func (c *jwksCache) refresh(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return fmt.Errorf("fetching JWKS: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetching JWKS: unexpected status %d", resp.StatusCode())
	}

	var set jwkSet
	if err := json.Unmarshal(resp.Body(), &set); err != nil {
		return fmt.Errorf("decoding JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}

		pub, err := parseRSAKey(k)
		if err != nil {
			return fmt.Errorf("parsing JWKS key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return fmt.Errorf("JWKS endpoint returned no usable RSA keys")
	}

	c.keys = keys
	c.fetchedAt = time.Now()

	return nil
}

// parseRSAKey converts the base64url-encoded modulus and exponent of a JWK
// into an *rsa.PublicKey.
func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 1 {
		return nil, fmt.Errorf("invalid public exponent %d", e)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
