package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

func TestNewHTTPProfileDefaults(t *testing.T) {
	p := NewHTTPProfile()
	assert.Equal(t, "POST", p.ReqMethod)
	assert.Empty(t, p.Endpoint)
	assert.Equal(t, 60*time.Second, p.RequestTimeout())
	assert.Equal(t, 60*time.Second, p.DialTimeout())
	assert.False(t, p.KeepAlive)
	assert.False(t, p.HasProxy())
	assert.Nil(t, p.ProxyURL())
	assert.Equal(t, DefaultUserAgent, p.UserAgent)
	assert.Equal(t, "https://sms.tencentcloudapi.com/", p.FullEndpoint())
	assert.Equal(t, "sms.tencentcloudapi.com", p.Host())
	require.NoError(t, p.Validate())
}

func TestEndpointWithScheme(t *testing.T) {
	p := NewHTTPProfile()
	p.Endpoint = "http://127.0.0.1:8080"
	assert.Equal(t, "http://127.0.0.1:8080/", p.FullEndpoint())
	assert.Equal(t, "127.0.0.1:8080", p.Host())
}

func TestRegionalEndpoint(t *testing.T) {
	assert.Equal(t, "sms.ap-guangzhou.tencentcloudapi.com", RegionalEndpoint("sms", "ap-guangzhou"))
	assert.Equal(t, "sms.tencentcloudapi.com", RegionalEndpoint("sms", ""))
}

func TestProxyURL(t *testing.T) {
	p := NewHTTPProfile()
	p.ProxyHost = "proxy.local"
	p.ProxyPort = 3128
	require.True(t, p.HasProxy())
	assert.Equal(t, "http://proxy.local:3128", p.ProxyURL().String())

	p.ProxyPort = 0
	assert.Equal(t, "http://proxy.local", p.ProxyURL().String())
}

func TestHTTPProfileValidate(t *testing.T) {
	p := &HTTPProfile{Endpoint: "http://", ReqMethod: "DELETE", ProxyPort: 70000}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, sdkerr.IsConfiguration(err))
	for _, want := range []string{
		`endpoint "http://" has no host`,
		"unsupported request method",
		"request timeout must be positive",
		"connect timeout must be positive",
		"proxy port 70000 out of range",
		"proxy port set without proxy host",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestClientProfile(t *testing.T) {
	p := NewClientProfile()
	assert.Equal(t, "TC3-HMAC-SHA256", p.SignMethod)
	assert.Equal(t, "2021-01-11", p.APIVersion)
	assert.Equal(t, "en-US", p.Language)
	assert.False(t, p.Debug)
	require.NoError(t, p.Validate())

	empty := &ClientProfile{}
	require.NoError(t, empty.Validate())
	assert.Equal(t, DefaultAPIVersion, empty.APIVersion)
	assert.NotNil(t, empty.HTTPProfile)

	bad := &ClientProfile{SignMethod: "HmacSHA1"}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, sdkerr.IsConfiguration(err))
}
