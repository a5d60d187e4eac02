package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/profile"
)

var (
	SecretIDFlag = &cli.StringFlag{
		Name:    "secret-id",
		Usage:   "API secret id",
		EnvVars: []string{credentials.SecretIDEnvVar, credentials.ShortSecretIDEnvVar},
	}

	SecretKeyFlag = &cli.StringFlag{
		Name:    "secret-key",
		Usage:   "API secret key",
		EnvVars: []string{credentials.SecretKeyEnvVar, credentials.ShortSecretKeyEnvVar},
	}

	TokenFlag = &cli.StringFlag{
		Name:    "token",
		Usage:   "Session token for temporary credentials",
		EnvVars: []string{credentials.TokenEnvVar, credentials.ShortTokenEnvVar},
	}

	RegionFlag = &cli.StringFlag{
		Name:    "region",
		Value:   "ap-guangzhou",
		Usage:   "API region",
		EnvVars: []string{"TENCENTCLOUD_REGION"},
	}

	EndpointFlag = &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "API endpoint host (default: the regional sms endpoint)",
		EnvVars: []string{"TENCENTCLOUD_SMS_ENDPOINT"},
	}

	TimeoutFlag = &cli.IntFlag{
		Name:  "timeout",
		Value: profile.DefaultReqTimeout,
		Usage: "Request timeout in seconds",
	}

	ConnectTimeoutFlag = &cli.IntFlag{
		Name:  "connect-timeout",
		Value: profile.DefaultConnectTimeout,
		Usage: "Connect timeout in seconds",
	}

	KeepAliveFlag = &cli.BoolFlag{
		Name:  "keep-alive",
		Usage: "Reuse connections between requests",
	}

	ProxyHostFlag = &cli.StringFlag{
		Name:    "proxy-host",
		Usage:   "HTTP proxy host; HTTPS_PROXY is used when unset",
		EnvVars: []string{"TENCENTCLOUD_PROXY_HOST"},
	}

	ProxyPortFlag = &cli.IntFlag{
		Name:    "proxy-port",
		Usage:   "HTTP proxy port",
		EnvVars: []string{"TENCENTCLOUD_PROXY_PORT"},
	}

	LanguageFlag = &cli.StringFlag{
		Name:  "language",
		Value: profile.DefaultLanguage,
		Usage: "Language of error messages (en-US, zh-CN)",
	}

	RetriesFlag = &cli.UintFlag{
		Name:  "retries",
		Value: 0,
		Usage: "Retries after network errors",
	}

	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		EnvVars: []string{"LOG_LEVEL"},
	}

	DebugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Log request and response bodies",
		EnvVars: []string{"TENCENTCLOUD_DEBUG"},
	}

	PhoneFlag = &cli.StringSliceFlag{
		Name:     "phone",
		Usage:    "Recipient phone number in E.164 form; repeat for several",
		Required: true,
	}

	AppIDFlag = &cli.StringFlag{
		Name:     "app-id",
		Usage:    "SmsSdkAppId",
		EnvVars:  []string{"TENCENTCLOUD_SMS_APP_ID"},
		Required: true,
	}

	TemplateIDFlag = &cli.StringFlag{
		Name:     "template-id",
		Usage:    "Approved template id",
		Required: true,
	}

	SignNameFlag = &cli.StringFlag{
		Name:    "sign-name",
		Usage:   "Approved signature; omit for international messages",
		EnvVars: []string{"TENCENTCLOUD_SMS_SIGN_NAME"},
	}

	ParamFlag = &cli.StringSliceFlag{
		Name:  "param",
		Usage: "Template parameter; repeat in template order",
	}

	SenderIDFlag = &cli.StringFlag{
		Name:  "sender-id",
		Usage: "Sender id for international messages",
	}

	SessionContextFlag = &cli.StringFlag{
		Name:  "session-context",
		Usage: "Opaque value echoed back in the response",
	}
)

// GlobalFlags configure credentials, transport and logging.
var GlobalFlags = []cli.Flag{
	SecretIDFlag,
	SecretKeyFlag,
	TokenFlag,
	RegionFlag,
	EndpointFlag,
	TimeoutFlag,
	ConnectTimeoutFlag,
	KeepAliveFlag,
	ProxyHostFlag,
	ProxyPortFlag,
	LanguageFlag,
	RetriesFlag,
	LogLevelFlag,
	DebugFlag,
}

// SendFlags describe one SendSms call.
var SendFlags = []cli.Flag{
	PhoneFlag,
	AppIDFlag,
	TemplateIDFlag,
	SignNameFlag,
	ParamFlag,
	SenderIDFlag,
	SessionContextFlag,
}
