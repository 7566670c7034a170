package slack

import (
	"fmt"
	"strings"

	"github.com/ricardonunez-io/triage/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

type Config struct {
	BotToken  string
	ChannelID string
	// APIURL overrides the Slack endpoint; empty uses the public API.
	APIURL    string
}

func (c Config) Enabled() bool {
	return c.BotToken != "" && c.ChannelID != ""
}

// SendIncident posts one incident report to the configured channel.
func SendIncident(entry output.IncidentEntry, config Config) error {
	var opts []slack.Option
	if config.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(config.APIURL))
	}
	api := slack.New(config.BotToken, opts...)

	_, msgTimestamp, err := api.PostMessage(
		config.ChannelID,
		slack.MsgOptionBlocks(BuildBlocks(entry)...),
		slack.MsgOptionText(fallbackText(entry), false),
	)
	if err != nil {
		log.Err(err).Str("channel", config.ChannelID).Msg("Failed to post Slack message")
		return err
	}

	log.Info().
		Str("channel", config.ChannelID).
		Str("timestamp", msgTimestamp).
		Int("incident", entry.Number).
		Msg("Triage report posted to Slack")
	return nil
}

func BuildBlocks(entry output.IncidentEntry) []slack.Block {
	rep := entry.Report
	severity := "N/A"
	if rep != nil {
		severity = rep.Severity
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(
			"plain_text",
			fmt.Sprintf("%s Incident #%d [%s] %s", severityToEmoji(severity), entry.Number, entry.Service, severity),
			false, false,
		)),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Pattern:* `%s`\n*Events:* %d (%s to %s)",
					entry.Pattern, entry.Count, entry.FirstSeen, entry.LastSeen),
				false, false),
			nil, nil,
		),
	}

	if rep == nil {
		return blocks
	}

	blocks = append(blocks,
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Summary:*\n%s\n*Root Cause:*\n%s", rep.Summary, rep.RootCause),
				false, false),
			nil, nil,
		),
	)

	if len(rep.ActionItems) > 0 {
		points := make([]string, len(rep.ActionItems))
		for i, p := range rep.ActionItems {
			points[i] = fmt.Sprintf("• %s", p)
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Action Items:*\n%s", strings.Join(points, "\n")),
				false, false),
			nil, nil,
		))
	}

	return blocks
}

func fallbackText(entry output.IncidentEntry) string {
	if entry.Report == nil {
		return fmt.Sprintf("Incident #%d [%s]", entry.Number, entry.Service)
	}
	return fmt.Sprintf("Incident #%d [%s] %s: %s", entry.Number, entry.Service, entry.Report.Severity, entry.Report.Summary)
}

func severityToEmoji(severity string) string {
	switch strings.ToUpper(severity) {
	case "P1":
		return "🔴"
	case "P2":
		return "🟠"
	case "P3":
		return "🟡"
	default:
		return "🟢"
	}
}
