package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/forestrie/go-tc3sms/client"
	smscli "github.com/forestrie/go-tc3sms/internal/cli"
	"github.com/forestrie/go-tc3sms/internal/logger"
	"github.com/forestrie/go-tc3sms/internal/retry"
	"github.com/forestrie/go-tc3sms/sms"
)

func main() {
	app := &cli.App{
		Name:  "smsctl",
		Usage: "Send text messages through the TencentCloud SMS API",
		Flags: smscli.GlobalFlags,
		Commands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "Send one templated message to one or more phone numbers",
				Flags:  smscli.SendFlags,
				Action: runSend,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSend(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := smscli.NewConfigFromCLI(c)

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	smsClient, err := sms.NewClient(cfg.Credential(), cfg.Region, cfg.ClientProfile(), client.WithLogger(l))
	if err != nil {
		return err
	}

	req := smscli.NewSendSmsRequestFromCLI(c)
	l.Sugar().Infow("Sending SMS",
		"region", cfg.Region,
		"numbers", len(req.PhoneNumberSet),
		"template_id", req.TemplateID)

	resp, err := retry.Do(ctx, l, retry.DefaultPolicy(cfg.Retries), func(ctx context.Context) (*sms.SendSmsResponse, error) {
		return smsClient.SendSms(ctx, req)
	})
	if err != nil {
		return err
	}

	l.Info("SendSms completed",
		zap.String("requestId", resp.RequestID),
		zap.Int("succeeded", resp.SuccessCount()),
		zap.Int("failed", resp.FailedCount()))

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(out))

	if !resp.AllSucceeded() {
		return cli.Exit(fmt.Sprintf("%d of %d messages were rejected", resp.FailedCount(), len(resp.SendStatusSet)), 1)
	}
	return nil
}
