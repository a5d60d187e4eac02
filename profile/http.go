package profile

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

const (
	DefaultEndpoint       = "sms.tencentcloudapi.com"
	DefaultDomain         = "tencentcloudapi.com"
	DefaultReqTimeout     = 60
	DefaultConnectTimeout = 60
	DefaultUserAgent      = "TencentCloud-SDK-Go-TC3/1.0.0"
)

// HTTPProfile configures how requests reach the API. Timeouts are in
// seconds.
type HTTPProfile struct {
	ReqMethod      string
	Endpoint       string
	ReqTimeout     int
	ConnectTimeout int
	KeepAlive      bool
	ProxyHost      string
	ProxyPort      int
	UserAgent      string
}

// NewHTTPProfile returns an HTTPProfile with POST and 60 second timeouts.
// Keep-alive is off. Endpoint is left empty so a client derives the
// regional endpoint of its service and region.
func NewHTTPProfile() *HTTPProfile {
	return &HTTPProfile{
		ReqMethod:      http.MethodPost,
		ReqTimeout:     DefaultReqTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		UserAgent:      DefaultUserAgent,
	}
}

// RegionalEndpoint builds the <service>.<region>.tencentcloudapi.com host.
// An empty region yields the global <service>.tencentcloudapi.com host.
func RegionalEndpoint(service, region string) string {
	if region == "" {
		return service + "." + DefaultDomain
	}
	return service + "." + region + "." + DefaultDomain
}

// FullEndpoint returns the https URL requests are posted to. An endpoint
// that already carries a scheme is returned unchanged; an empty one means
// DefaultEndpoint.
func (p *HTTPProfile) FullEndpoint() string {
	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if strings.Contains(endpoint, "://") {
		return strings.TrimSuffix(endpoint, "/") + "/"
	}
	return "https://" + endpoint + "/"
}

// Host returns the endpoint host, without scheme or path.
func (p *HTTPProfile) Host() string {
	u, err := url.Parse(p.FullEndpoint())
	if err != nil {
		return p.Endpoint
	}
	return u.Host
}

func (p *HTTPProfile) HasProxy() bool {
	return p.ProxyHost != ""
}

// ProxyURL returns http://host[:port], or nil when no proxy is configured.
func (p *HTTPProfile) ProxyURL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	host := p.ProxyHost
	if p.ProxyPort > 0 {
		host = net.JoinHostPort(p.ProxyHost, strconv.Itoa(p.ProxyPort))
	}
	return &url.URL{Scheme: "http", Host: host}
}

func (p *HTTPProfile) RequestTimeout() time.Duration {
	return time.Duration(p.ReqTimeout) * time.Second
}

func (p *HTTPProfile) DialTimeout() time.Duration {
	return time.Duration(p.ConnectTimeout) * time.Second
}

// Validate reports every problem with the profile at once.
func (p *HTTPProfile) Validate() error {
	var result *multierror.Error
	if u, err := url.Parse(p.FullEndpoint()); err != nil {
		result = multierror.Append(result, fmt.Errorf("endpoint %q is not a valid URL: %w", p.Endpoint, err))
	} else if u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("endpoint %q has no host", p.Endpoint))
	}
	if !strings.EqualFold(p.ReqMethod, http.MethodPost) {
		result = multierror.Append(result, fmt.Errorf("unsupported request method %q, only POST carries a JSON body", p.ReqMethod))
	}
	if p.ReqTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("request timeout must be positive, got %d", p.ReqTimeout))
	}
	if p.ConnectTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("connect timeout must be positive, got %d", p.ConnectTimeout))
	}
	if p.ProxyPort < 0 || p.ProxyPort > 65535 {
		result = multierror.Append(result, fmt.Errorf("proxy port %d out of range", p.ProxyPort))
	}
	if p.ProxyPort > 0 && p.ProxyHost == "" {
		result = multierror.Append(result, fmt.Errorf("proxy port set without proxy host"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return sdkerr.NewConfiguration("invalid http profile", err)
	}
	return nil
}
