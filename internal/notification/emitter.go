package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Emitter appends notification records to the store; the stored record is the
// source of truth. When a bot token is configured, notifications are also
// mirrored to Telegram for accounts that linked a chat id, fire-and-forget.
type Emitter struct {
	repo     ports.NotificationRepo
	accounts ports.AccountRepo
	bot      *tgbotapi.BotAPI
	logger   logger.Logger
}

func NewEmitter(repo ports.NotificationRepo, accounts ports.AccountRepo, botToken string, log logger.Logger) (*Emitter, error) {
	e := &Emitter{repo: repo, accounts: accounts, logger: log}

	if botToken == "" {
		log.Warn("telegram bot token is empty, mirror notifications disabled")
		return e, nil
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	e.bot = bot

	return e, nil
}

func (e *Emitter) Notify(ctx context.Context, accountID, title, message string, typ domain.NotificationType) error {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.repo.Append(ctx, n); err != nil {
		return fmt.Errorf("append notification: %w", err)
	}

	if e.bot != nil {
		go e.mirror(context.WithoutCancel(ctx), accountID, title, message)
	}

	return nil
}

func (e *Emitter) mirror(ctx context.Context, accountID, title, message string) {
	account, err := e.accounts.GetByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			e.logger.Error("failed to resolve account for telegram mirror",
				logger.String("account_id", accountID),
				logger.String("error", err.Error()),
			)
		}
		return
	}
	if account.TelegramChatID == nil {
		return
	}

	msg := tgbotapi.NewMessage(*account.TelegramChatID, fmt.Sprintf("*%s*\n\n%s", title, message))
	msg.ParseMode = "Markdown"

	if _, err := e.bot.Send(msg); err != nil {
		e.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *account.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
