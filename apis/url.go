/*
Copyright 2025 The Knative-Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apis

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// URL is an alias of net/url.URL that serializes to and from a JSON string,
// so sink and address fields round-trip through the Kubernetes API as plain
// URLs.
type URL url.URL

// ParseURL attempts to parse the given string as a URL.
// An empty string parses to a nil URL rather than an error, so optional URL
// fields can round-trip through their zero value.
func ParseURL(u string) (*URL, error) {
	if u == "" {
		return nil, nil
	}
	pu, err := url.Parse(u)
	if err != nil {
		return nil, err
	}
	return (*URL)(pu), nil
}

// HTTP constructs an http URL for the given host.
func HTTP(domain string) *URL {
	return &URL{Scheme: "http", Host: domain}
}

// HTTPS constructs an https URL for the given host.
func HTTPS(domain string) *URL {
	return &URL{Scheme: "https", Host: domain}
}

// URL returns the receiver as a net/url.URL, nil-safe.
func (u *URL) URL() *url.URL {
	if u == nil {
		return &url.URL{}
	}
	return (*url.URL)(u)
}

// String returns the string representation of the URL, nil-safe.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.URL().String()
}

// DeepCopy returns a newly allocated copy of the URL.
func (u *URL) DeepCopy() *URL {
	if u == nil {
		return nil
	}
	out := *u
	if u.User != nil {
		user := *u.User
		out.User = &user
	}
	return &out
}

// MarshalJSON implements json.Marshaler.
func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *URL) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("URL must be a string: %w", err)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	*u = URL(*parsed)
	return nil
}
