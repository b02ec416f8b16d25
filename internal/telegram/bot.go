package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"linkedin-job-screener/internal/scraper"
)

const maxDescriptionChars = 300

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    sender
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//api.Debug = true

	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// inside (...) of an inline link MarkdownV2 only needs ) and \ escaped
var linkEscaper = strings.NewReplacer("\\", "\\\\", ")", "\\)")

func escapeLinkURL(u string) string {
	return linkEscaper.Replace(u)
}

// FormatJob renders a screened job as a MarkdownV2 message body.
func FormatJob(job scraper.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💼 *%s*\n", escapeMarkdown(job.Title))
	fmt.Fprintf(&b, "🏢 %s\n", escapeMarkdown(job.Company))
	fmt.Fprintf(&b, "📍 %s\n", escapeMarkdown(job.Location))
	if job.CompanySize != "" {
		fmt.Fprintf(&b, "👥 %s\n", escapeMarkdown(job.CompanySize))
	}

	desc := job.Description
	if desc != "" && desc != scraper.DescriptionNotFound {
		if r := []rune(desc); len(r) > maxDescriptionChars {
			desc = string(r[:maxDescriptionChars]) + "..."
		}
		fmt.Fprintf(&b, "📄 %s\n", escapeMarkdown(desc))
	}

	status := job.ScreeningStatus
	if status == "" {
		status = scraper.StatusNotRelevant
		if job.IsRelevant {
			status = scraper.StatusRelevant
		}
	}
	fmt.Fprintf(&b, "🎯 Score: %s %s\n", escapeMarkdown(fmt.Sprintf("%.1f", job.Score)), escapeMarkdown(status))
	if job.URL != "" {
		fmt.Fprintf(&b, "🔗 [View Job](%s)\n", escapeLinkURL(job.URL))
	}
	return b.String()
}

func (b *Bot) SendJob(job scraper.Job) error {
	msg := tgbotapi.NewMessage(b.chatID, FormatJob(job))
	msg.ParseMode = "MarkdownV2"
	if job.URL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("🔗 View Job", job.URL),
			),
		)
	}

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
