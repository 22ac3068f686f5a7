package cache

import "time"

type PolicyKind int

const (
	// PolicyKeepForSession never evicts. A page bundle is bounded to one
	// page of results, so the store grows with pages visited in a session.
	PolicyKeepForSession PolicyKind = iota
	// PolicyTTL drops entries older than the policy TTL on read.
	PolicyTTL
)

type EvictionPolicy struct {
	Kind PolicyKind
	TTL  time.Duration
}

func KeepForSession() EvictionPolicy {
	return EvictionPolicy{Kind: PolicyKeepForSession}
}

func ExpireAfter(ttl time.Duration) EvictionPolicy {
	return EvictionPolicy{Kind: PolicyTTL, TTL: ttl}
}

func (p EvictionPolicy) expired(storedAt, now time.Time) bool {
	return p.Kind == PolicyTTL && p.TTL > 0 && now.Sub(storedAt) >= p.TTL
}
