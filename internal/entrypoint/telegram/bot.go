// Package telegram is the conversational entry point: a long-polling bot
// that walks users through structured entry and query flows.
package telegram

import (
	"context"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	router      *Router
	idempotence *usecase.Idempotence
	log         *slog.Logger
}

func New(token string, router *Router, idempotence *usecase.Idempotence, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		router:      router,
		idempotence: idempotence,
		log:         log,
	}, nil
}

// Start begins consuming updates. One goroutine drains the channel, so
// each message is processed to completion before the next.
func (b *Bot) Start(ctx context.Context) {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = 60

	updates := b.api.GetUpdatesChan(config)
	go b.handleUpdates(ctx, updates)
	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.log.Info("telegram bot started", "account", b.api.Self.UserName)
}

func (b *Bot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if ok, err := b.firstDelivery(update); err != nil {
			b.log.Error("idempotence check", "error", err)
			continue
		} else if !ok {
			continue
		}

		message := update.Message
		if message.From == nil {
			continue
		}

		in := inbound{
			userID:    message.From.ID,
			firstName: message.From.FirstName,
			username:  message.From.UserName,
			text:      message.Text,
		}
		if message.IsCommand() {
			in.command = message.Command()
		}

		out := b.router.Handle(ctx, in)
		if out.text == "" {
			continue
		}

		msg := tgbotapi.NewMessage(message.Chat.ID, out.text)
		if out.keyboard != nil {
			msg.ReplyMarkup = replyKeyboard(out.keyboard)
		}
		if _, err := b.api.Send(msg); err != nil {
			b.log.Error("send reply", "chat_id", message.Chat.ID, "error", err)
		}
	}
}

func (b *Bot) firstDelivery(update tgbotapi.Update) (bool, error) {
	id := "telegram" +
		strconv.FormatInt(update.Message.Chat.ID, 10) +
		strconv.Itoa(update.Message.MessageID)
	return b.idempotence.Execute(id)
}
