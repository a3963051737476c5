package scanner

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"slices"
	"strings"
)

// trackingParams are dropped from audited URLs. Search results and marketing
// links carry them and they never change the rendered page.
var trackingParams = []string{"gclid", "fbclid", "msclkid", "mc_cid", "mc_eid", "ref"} //nolint: gochecknoglobals

// NormalizeURL returns the canonical form of a website URL so that the same
// page is never audited twice under different spellings.
//
// The scheme and host are lower-cased and default ports dropped. The path is
// cleaned with "/" for the root and no trailing slash. Tracking parameters
// (utm_* and the click IDs above) are stripped and the remaining query sorted.
// Credentials and the fragment are removed. NormalizeURL does not check the
// scheme; callers validate the result.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = canonicalHost(u.Scheme, u.Host)
	u.User = nil
	u.Fragment = ""
	u.RawFragment = ""

	p := path.Clean("/" + u.Path)
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	u.Path = p
	u.RawPath = ""

	if u.RawQuery != "" {
		q := u.Query()
		for k, v := range q {
			if strings.HasPrefix(strings.ToLower(k), "utm_") || slices.Contains(trackingParams, strings.ToLower(k)) {
				q.Del(k)

				continue
			}
			slices.Sort(v)
		}
		// Encode sorts by key
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func canonicalHost(scheme, hostport string) string {
	hostport = strings.ToLower(hostport)
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		// no port
		return strings.TrimSuffix(hostport, ".")
	}
	host = strings.TrimSuffix(host, ".")
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}

		return host
	}

	return net.JoinHostPort(host, port)
}
