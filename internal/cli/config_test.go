package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/forestrie/go-tc3sms/profile"
	"github.com/forestrie/go-tc3sms/sms"
)

func TestConfigFromCLI(t *testing.T) {
	var cfg *Config
	var req *sms.SendSmsRequest

	app := &cli.App{
		Name:  "test",
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			{
				Name:  "send",
				Flags: SendFlags,
				Action: func(c *cli.Context) error {
					cfg = NewConfigFromCLI(c)
					req = NewSendSmsRequestFromCLI(c)
					return nil
				},
			},
		},
	}

	err := app.Run([]string{
		"test",
		"--secret-id", "id", "--secret-key", "key",
		"--region", "ap-beijing", "--timeout", "5", "--proxy-host", "proxy.local", "--proxy-port", "3128",
		"--retries", "2", "--debug",
		"send",
		"--phone", "+8613800000000", "--phone", "+8613800000001",
		"--app-id", "1400000000", "--template-id", "123456",
		"--sign-name", "Sig", "--param", "1234", "--param", "5",
	})
	require.NoError(t, err)

	require.NotNil(t, cfg)
	assert.Equal(t, "ap-beijing", cfg.Region)
	assert.Equal(t, uint(2), cfg.Retries)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "id", cfg.Credential().SecretID())

	p := cfg.ClientProfile()
	require.NoError(t, p.Validate())
	assert.Equal(t, 5, p.HTTPProfile.ReqTimeout)
	assert.Equal(t, 60, p.HTTPProfile.ConnectTimeout)
	assert.Equal(t, "http://proxy.local:3128", p.HTTPProfile.ProxyURL().String())
	assert.True(t, p.Debug)
	assert.Empty(t, p.HTTPProfile.Endpoint)

	smsClient, err := sms.NewClient(cfg.Credential(), cfg.Region, p)
	require.NoError(t, err)
	assert.Equal(t, "sms.ap-beijing.tencentcloudapi.com", smsClient.API().Profile().HTTPProfile.Endpoint)

	require.NotNil(t, req)
	assert.Equal(t, []string{"+8613800000000", "+8613800000001"}, req.PhoneNumberSet)
	assert.Equal(t, "Sig", req.SignName)
	assert.Equal(t, []string{"1234", "5"}, req.TemplateParamSet)
	require.NoError(t, req.Validate())
}

func TestConfigEndpointOverride(t *testing.T) {
	var cfg *Config
	app := &cli.App{
		Name:  "test",
		Flags: GlobalFlags,
		Action: func(c *cli.Context) error {
			cfg = NewConfigFromCLI(c)
			return nil
		},
	}

	require.NoError(t, app.Run([]string{"test", "--endpoint", profile.DefaultEndpoint}))
	require.NotNil(t, cfg)

	smsClient, err := sms.NewClient(cfg.Credential(), cfg.Region, cfg.ClientProfile())
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultEndpoint, smsClient.API().Profile().HTTPProfile.Endpoint)
}
