package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/profile"
	"github.com/forestrie/go-tc3sms/sms"
)

type Config struct {
	SecretID       string
	SecretKey      string
	Token          string
	Region         string
	Endpoint       string
	Timeout        int
	ConnectTimeout int
	KeepAlive      bool
	ProxyHost      string
	ProxyPort      int
	Language       string
	Retries        uint
	LogLevel       string
	Debug          bool
}

func NewConfigFromCLI(c *cli.Context) *Config {
	return &Config{
		SecretID:       c.String(SecretIDFlag.Name),
		SecretKey:      c.String(SecretKeyFlag.Name),
		Token:          c.String(TokenFlag.Name),
		Region:         c.String(RegionFlag.Name),
		Endpoint:       c.String(EndpointFlag.Name),
		Timeout:        c.Int(TimeoutFlag.Name),
		ConnectTimeout: c.Int(ConnectTimeoutFlag.Name),
		KeepAlive:      c.Bool(KeepAliveFlag.Name),
		ProxyHost:      c.String(ProxyHostFlag.Name),
		ProxyPort:      c.Int(ProxyPortFlag.Name),
		Language:       c.String(LanguageFlag.Name),
		Retries:        c.Uint(RetriesFlag.Name),
		LogLevel:       c.String(LogLevelFlag.Name),
		Debug:          c.Bool(DebugFlag.Name),
	}
}

// Credential returns the credential given on the command line or through
// the environment.
func (cfg *Config) Credential() *credentials.Credential {
	return credentials.New(cfg.SecretID, cfg.SecretKey, cfg.Token)
}

// ClientProfile maps the transport settings onto a profile.
func (cfg *Config) ClientProfile() *profile.ClientProfile {
	p := profile.NewClientProfile()
	p.HTTPProfile.Endpoint = cfg.Endpoint
	p.HTTPProfile.ReqTimeout = cfg.Timeout
	p.HTTPProfile.ConnectTimeout = cfg.ConnectTimeout
	p.HTTPProfile.KeepAlive = cfg.KeepAlive
	p.HTTPProfile.ProxyHost = cfg.ProxyHost
	p.HTTPProfile.ProxyPort = cfg.ProxyPort
	p.Language = cfg.Language
	p.Debug = cfg.Debug
	return p
}

// NewSendSmsRequestFromCLI builds the SendSms request from the send
// command's flags.
func NewSendSmsRequestFromCLI(c *cli.Context) *sms.SendSmsRequest {
	var req *sms.SendSmsRequest
	if signName := c.String(SignNameFlag.Name); signName != "" {
		req = sms.NewSendSmsRequest(c.StringSlice(PhoneFlag.Name), c.String(AppIDFlag.Name), c.String(TemplateIDFlag.Name), signName, c.StringSlice(ParamFlag.Name))
	} else {
		req = sms.NewInternationalSendSmsRequest(c.StringSlice(PhoneFlag.Name), c.String(AppIDFlag.Name), c.String(TemplateIDFlag.Name), c.StringSlice(ParamFlag.Name))
	}
	req.SenderID = c.String(SenderIDFlag.Name)
	req.SessionContext = c.String(SessionContextFlag.Name)
	return req
}
