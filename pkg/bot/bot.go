package bot

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramAPI is the subset of the bot API client the front end needs
type TelegramAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot is a thin telegram front end: /start replies with a keyboard opening
// the web app, any other text is echoed back.
type Bot struct {
	api       TelegramAPI
	webAppURL string
}

// New creates a bot front end pointing at the given web app URL
func New(api TelegramAPI, webAppURL string) *Bot {
	return &Bot{api: api, webAppURL: webAppURL}
}

// Run processes updates until the context is canceled
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	log.Printf("[INFO] bot started, web app %s", b.webAppURL)

	for {
		select {
		case update := <-updates:
			updateCtx, updateCancel := context.WithTimeout(ctx, 5*time.Second)
			b.handleUpdate(updateCtx, update)
			updateCancel()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (b *Bot) handleUpdate(_ context.Context, update tgbotapi.Update) {
	// a handler panic must not take the whole update loop down
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[ERROR] panic recovered: %v\n%s", p, string(debug.Stack()))
		}
	}()

	if update.Message == nil || update.Message.Text == "" {
		return
	}
	msg := update.Message

	if msg.IsCommand() && msg.Command() == "start" {
		log.Printf("[INFO] /start from @%s (id=%d)", msg.From.UserName, msg.From.ID)
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Привет! Нажми кнопку, чтобы открыть мини-приложение.")
		reply.ReplyMarkup = b.webAppKeyboard()
		if _, err := b.api.Send(reply); err != nil {
			log.Printf("[ERROR] failed to send start reply: %v", err)
		}
		return
	}

	// plain echo so delivery is easy to verify in a live chat
	reply := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Эхо: %s", msg.Text))
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("[ERROR] failed to send echo: %v", err)
	}
}

// tgbotapi v5 predates the web_app button type, describe the markup directly
type webAppInfo struct {
	URL string `json:"url"`
}

type keyboardButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type replyKeyboard struct {
	Keyboard       [][]keyboardButton `json:"keyboard"`
	ResizeKeyboard bool               `json:"resize_keyboard"`
}

func (b *Bot) webAppKeyboard() replyKeyboard {
	return replyKeyboard{
		Keyboard: [][]keyboardButton{{
			{Text: "Открыть мини-приложение", WebApp: &webAppInfo{URL: b.webAppURL}},
		}},
		ResizeKeyboard: true,
	}
}
