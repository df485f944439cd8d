package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	notifyBot    *tgbotapi.BotAPI
	notifyChatID int64
)

// InitNotifier wires the Telegram bot that pings the team when a new lead
// comes in. Optional: with TELEGRAM_BOT_TOKEN unset, alerts are skipped.
func InitNotifier() error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, lead alerts disabled")
		return nil
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	notifyBot = bot
	notifyChatID = chatID
	log.Printf("Telegram lead alerts enabled for @%s", bot.Self.UserName)
	return nil
}

// NotifyLead sends the team an alert about a captured lead.
func NotifyLead(name, phone, location string) error {
	if notifyBot == nil {
		return nil
	}

	text := fmt.Sprintf("New listing lead\nName: %s\nPhone: %s", name, phone)
	if location != "" {
		text += "\nLocation: " + location
	}

	msg := tgbotapi.NewMessage(notifyChatID, text)
	_, err := notifyBot.Send(msg)
	return err
}
