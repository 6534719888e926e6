package di

import (
	"io"

	"leetpick/internal/adapter/console"
	"leetpick/internal/adapter/discord"
	"leetpick/internal/adapter/leetcode"
	"leetpick/internal/adapter/notify"
	"leetpick/internal/adapter/slack"
	"leetpick/internal/config"
	"leetpick/internal/domain/ports"
)

func provideProblemProvider(cfg *config.Config, logger ports.Logger) (ports.ProblemProvider, error) {
	return leetcode.New(leetcode.Options{
		Endpoint:     cfg.GraphQLEndpoint,
		SessionToken: cfg.SessionToken,
		CSRFToken:    cfg.CSRFToken,
		Timeout:      cfg.RequestTimeout,
	}, logger)
}

// provideNotifier posts to every configured webhook, or prints to out when none is configured.
func provideNotifier(cfg *config.Config, out io.Writer, logger ports.Logger) ports.Notifier {
	var webhooks []ports.Notifier
	if cfg.DiscordWebhookURL != "" {
		webhooks = append(webhooks, discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger))
	}
	if cfg.SlackWebhookURL != "" {
		webhooks = append(webhooks, slack.NewWebhook(cfg.SlackWebhookURL, cfg.RequestTimeout, logger))
	}

	switch len(webhooks) {
	case 0:
		return console.NewNotifier(out, logger)
	case 1:
		return webhooks[0]
	default:
		return notify.NewComposite(webhooks...)
	}
}
