package sms

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-tc3sms/client"
	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/profile"
	"github.com/forestrie/go-tc3sms/sdkerr"
	mock_http "github.com/forestrie/go-tc3sms/transport/mock"
)

const (
	testSecretID  = "AKIDz8krbsJ5yKBZQpn74WFkmLPx3EXAMPLE"
	testSecretKey = "Gu5t9xGARNpq86cd98joQYCN3EXAMPLE"
)

func newMockedClient(t *testing.T, rt http.RoundTripper) *Client {
	t.Helper()
	p := profile.NewClientProfile()
	p.HTTPProfile.Endpoint = profile.DefaultEndpoint
	c, err := NewClient(
		credentials.New(testSecretID, testSecretKey, ""),
		"ap-guangzhou",
		p,
		client.WithClock(func() time.Time { return time.Unix(1551113065, 0) }),
		client.WithRoundTripper(rt),
	)
	require.NoError(t, err)
	return c
}

func goldenRequest() *SendSmsRequest {
	return NewSendSmsRequest([]string{"+8613800000000"}, "1400000000", "123456", "YourSignature", []string{"123456"})
}

func TestSendSmsSignsGoldenRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRT := mock_http.NewMockRoundTripper(ctrl)

	mockRT.EXPECT().
		RoundTrip(mock_http.NewHTTPSimpleMatcher(http.MethodPost, "https://sms.tencentcloudapi.com/")).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.Equal(t,
				`{"PhoneNumberSet":["+8613800000000"],"SmsSdkAppId":"1400000000","TemplateId":"123456","SignName":"YourSignature","TemplateParamSet":["123456"]}`,
				string(body))
			assert.Equal(t,
				"TC3-HMAC-SHA256 Credential=AKIDz8krbsJ5yKBZQpn74WFkmLPx3EXAMPLE/2019-02-25/sms/tc3_request, "+
					"SignedHeaders=content-type;host, "+
					"Signature=e5091ae7ab17f2b5ff42eceab02350c304302b5fbec433b4a9f1371e9094323c",
				req.Header.Get("Authorization"))
			assert.Equal(t, "SendSms", req.Header.Get("X-TC-Action"))
			return mock_http.JSONResponse(http.StatusOK, `{"Response":{
				"SendStatusSet":[{"SerialNo":"2028:1","PhoneNumber":"+8613800000000","Fee":1,"SessionContext":"","Code":"Ok","Message":"send success","IsoCode":"CN"}],
				"RequestId":"a0aabda6-cf91-4f3e-a81f-9198114a2279"}}`), nil
		})

	resp, err := newMockedClient(t, mockRT).SendSms(context.Background(), goldenRequest())
	require.NoError(t, err)
	assert.True(t, resp.AllSucceeded())
	assert.Equal(t, "a0aabda6-cf91-4f3e-a81f-9198114a2279", resp.RequestID)
	assert.Equal(t, 1, resp.TotalFee())
}

func TestSendSmsAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRT := mock_http.NewMockRoundTripper(ctrl)

	mockRT.EXPECT().RoundTrip(gomock.Any()).Return(mock_http.JSONResponse(http.StatusOK,
		`{"Response":{"Error":{"Code":"FailedOperation.SignatureIncorrectOrUnapproved","Message":"signature is not approved"},"RequestId":"req-x"}}`), nil)

	_, err := newMockedClient(t, mockRT).SendSms(context.Background(), goldenRequest())
	require.Error(t, err)
	assert.True(t, sdkerr.HasCode(err, CodeSignatureIncorrectOrUnapproved))
}

func TestSendSmsInvalidRequestNeverSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRT := mock_http.NewMockRoundTripper(ctrl)

	c := newMockedClient(t, mockRT)
	_, err := c.SendSms(context.Background(), NewSendSmsRequest(nil, "", "", "", nil))
	require.Error(t, err)
	assert.True(t, sdkerr.IsConfiguration(err))

	_, err = c.SendSms(context.Background(), nil)
	assert.True(t, sdkerr.IsConfiguration(err))
}

func TestSendSmsEmptyCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRT := mock_http.NewMockRoundTripper(ctrl)

	c, err := NewClient(credentials.New("", "", ""), "ap-guangzhou", nil, client.WithRoundTripper(mockRT))
	require.NoError(t, err)
	assert.Equal(t, "sms", c.API().Service())

	_, err = c.SendSms(context.Background(), goldenRequest())
	require.Error(t, err)
	assert.True(t, sdkerr.IsConfiguration(err))
}

func TestSendSmsDefaultsToRegionalEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRT := mock_http.NewMockRoundTripper(ctrl)

	mockRT.EXPECT().
		RoundTrip(mock_http.NewHTTPSimpleMatcher(http.MethodPost, "https://sms.ap-guangzhou.tencentcloudapi.com/")).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "sms.ap-guangzhou.tencentcloudapi.com", req.Host)
			assert.Equal(t, "ap-guangzhou", req.Header.Get("X-TC-Region"))
			return mock_http.JSONResponse(http.StatusOK, `{"Response":{"SendStatusSet":[],"RequestId":"r-1"}}`), nil
		})

	c, err := NewClient(
		credentials.New(testSecretID, testSecretKey, ""),
		"ap-guangzhou",
		nil,
		client.WithRoundTripper(mockRT),
	)
	require.NoError(t, err)
	assert.Equal(t, "sms.ap-guangzhou.tencentcloudapi.com", c.API().Profile().HTTPProfile.Endpoint)

	_, err = c.SendSms(context.Background(), goldenRequest())
	require.NoError(t, err)
}
