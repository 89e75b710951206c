package redis

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	schemeSentinel       = "redis+sentinel"
	schemeSentinelSecure = "rediss+sentinel"
)

// ResolveURL maps a connection URL onto a ConnectionTarget. URLs with a
// sentinel scheme are parsed into a SentinelTarget; any other URL is passed
// through unchanged as a direct target. The function performs no I/O.
//
// Sentinel URLs have the form
//
//	redis+sentinel://[user[:pass]@]host1[:port1][,host2[:port2]...]/master/db[?query]
//
// with rediss+sentinel forcing transport security on. Recognized query
// parameters are socket_timeout (float seconds), ssl (bool), ssl_cert_reqs
// (required/optional/none), ssl_keyfile, ssl_certfile and ssl_ca_certs.
func ResolveURL(rawURL string) (*ConnectionTarget, error) {
	scheme, rest, ok := splitScheme(rawURL)
	if !ok || (scheme != schemeSentinel && scheme != schemeSentinelSecure) {
		return &ConnectionTarget{Kind: TargetDirect, URL: rawURL}, nil
	}

	target, err := resolveSentinel(scheme, rest)
	if err != nil {
		return nil, err
	}
	return &ConnectionTarget{Kind: TargetSentinel, Sentinel: target}, nil
}

// splitScheme separates "scheme://rest". Scheme comparison is
// case-insensitive, like standard URL parsing.
func splitScheme(rawURL string) (scheme, rest string, ok bool) {
	i := strings.Index(rawURL, "://")
	if i < 0 {
		return "", rawURL, false
	}
	return strings.ToLower(rawURL[:i]), rawURL[i+3:], true
}

// resolveSentinel parses everything after "scheme://". The authority is
// parsed by hand: net/url rejects comma-separated host lists outright.
func resolveSentinel(scheme, rest string) (*SentinelTarget, error) {
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	var rawQuery string
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, rawQuery = rest[:i], rest[i+1:]
	}
	authority, path := rest, ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority, path = rest[:i], rest[i:]
	}

	creds, hostsPart := splitUserInfo(authority)

	hosts, err := parseSentinelHosts(hostsPart)
	if err != nil {
		return nil, err
	}
	masterName, db, err := parseMasterAndDB(path)
	if err != nil {
		return nil, err
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, WrapError("parsing query parameters", rawQuery, err)
	}
	socketTimeout, err := parseSocketTimeout(query)
	if err != nil {
		return nil, err
	}

	return &SentinelTarget{
		Hosts:         hosts,
		MasterName:    masterName,
		DB:            db,
		SocketTimeout: socketTimeout,
		Security:      parseSecurityParams(scheme, query),
		Credentials:   creds,
	}, nil
}

// splitUserInfo strips an embedded user[:pass]@ prefix from the authority.
// The split happens at the last '@' so passwords may contain the character.
// Empty components count as absent.
func splitUserInfo(authority string) (Credentials, string) {
	i := strings.LastIndexByte(authority, '@')
	if i < 0 {
		return Credentials{}, authority
	}
	username, password, _ := strings.Cut(authority[:i], ":")
	return Credentials{Username: username, Password: password}, authority[i+1:]
}

// parseSentinelHosts splits a comma-separated host[:port] list, keeping the
// input order. That order is the priority presented to the sentinel layer.
func parseSentinelHosts(hostsPart string) ([]HostPort, error) {
	tokens := strings.Split(hostsPart, ",")
	hosts := make([]HostPort, 0, len(tokens))
	for _, token := range tokens {
		host, portPart, hasPort := strings.Cut(token, ":")
		if !hasPort {
			hosts = append(hosts, HostPort{Host: token, Port: DefaultSentinelPort})
			continue
		}
		port, err := strconv.Atoi(portPart)
		if err != nil {
			return nil, WrapError("parsing sentinel port", token, err)
		}
		hosts = append(hosts, HostPort{Host: host, Port: port})
	}
	return hosts, nil
}

// parseMasterAndDB splits the URL path into "master/db". A path without a
// separator is the master name alone, with database index 0.
func parseMasterAndDB(path string) (string, int, error) {
	path = strings.TrimLeft(path, "/")
	masterName, dbPart, hasDB := strings.Cut(path, "/")
	if !hasDB {
		return path, 0, nil
	}
	db, err := strconv.Atoi(dbPart)
	if err != nil {
		return "", 0, WrapError("parsing database index", dbPart, err)
	}
	return masterName, db, nil
}

func parseSocketTimeout(query url.Values) (time.Duration, error) {
	raw := query.Get("socket_timeout")
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, WrapError("parsing socket timeout", raw, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func parseSecurityParams(scheme string, query url.Values) SecurityParams {
	enabled := scheme == schemeSentinelSecure || strings.EqualFold(query.Get("ssl"), "true")
	if !enabled {
		return SecurityParams{}
	}
	return SecurityParams{
		Enabled:  true,
		CertReqs: parseCertRequirement(query.Get("ssl_cert_reqs")),
		KeyFile:  query.Get("ssl_keyfile"),
		CertFile: query.Get("ssl_certfile"),
		CACerts:  query.Get("ssl_ca_certs"),
	}
}

// parseCertRequirement maps the ssl_cert_reqs value, case-insensitively.
// Unrecognized values yield no constraint.
func parseCertRequirement(raw string) CertRequirement {
	switch strings.ToLower(raw) {
	case "required":
		return CertRequired
	case "optional":
		return CertOptional
	case "none":
		return CertNone
	default:
		return CertUnspecified
	}
}
