package partner

import (
	"crypto/subtle"
	"encoding/base64"
)

// Static allow-list used when the config does not declare any partners.
var defaultPartners = map[string]string{
	"FAKEGOOGLE": "FAKEPASSWORD1234",
	"FAKEPEOPLE": "FAKEPASSWORD4578",
}

// Registry is the process-wide partner credential table. Built once at
// startup, never mutated afterwards, safe for unsynchronized reads.
type Registry struct {
	partners map[string]string
}

func NewRegistry(partners map[string]string) *Registry {
	if len(partners) == 0 {
		partners = defaultPartners
	}
	own := make(map[string]string, len(partners))
	for key, password := range partners {
		own[key] = password
	}
	return &Registry{partners: own}
}

// Lookup returns the plaintext password registered for key.
func (r *Registry) Lookup(key string) (string, bool) {
	password, ok := r.partners[key]
	return password, ok
}

// Authenticate compares passwordB64 against base64(UTF-8(plaintext)) for
// the given key in constant time. An unknown key runs the same comparison
// against an empty expectation so both failure causes look identical.
func (r *Registry) Authenticate(key, passwordB64 string) bool {
	plain, ok := r.partners[key]
	var expected string
	if ok {
		expected = base64.StdEncoding.EncodeToString([]byte(plain))
	}
	match := subtle.ConstantTimeCompare([]byte(expected), []byte(passwordB64)) == 1
	return ok && match
}

// Len reports how many partners are registered.
func (r *Registry) Len() int {
	return len(r.partners)
}
