package telegram

import (
	"bytes"
	"fmt"
	"image/png"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"screendiff/internal/domain/entity"
)

// maxPhotos сколько картинок с отличиями отправлять в чат за один пакет
const maxPhotos = 3

// Notifier отправляет итоги пакета сравнений в Telegram-чат
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier создаёт нотификатор для заданного чата
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Notifier{
		api:    api,
		chatID: chatID,
	}, nil
}

// NotifyBatch отправляет сводку пакета и картинки первых найденных отличий
func (n *Notifier) NotifyBatch(summary *entity.Summary, results []*entity.ComparisonResult) error {
	msg := tgbotapi.NewMessage(n.chatID, formatSummary(summary))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	sent := 0
	for _, result := range results {
		if sent >= maxPhotos {
			break
		}
		if !result.BugsFound || result.Visualization == nil {
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, result.Visualization); err != nil {
			log.Printf("Error encoding visualization for %s: %v", result.TestName, err)
			continue
		}

		photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
			Name:  fmt.Sprintf("diff_%s.png", result.TestName),
			Bytes: buf.Bytes(),
		})
		photo.Caption = fmt.Sprintf("%s — схожесть %.3f, уровень %s", result.TestName, result.Similarity, result.Severity)

		if _, err := n.api.Send(photo); err != nil {
			log.Printf("Error sending photo: %v", err)
		}
		sent++
	}
	return nil
}

// formatSummary собирает текст сводки пакета
func formatSummary(s *entity.Summary) string {
	text := fmt.Sprintf(`🧪 Пакет сравнений завершён

Всего: %d
✅ Без отличий: %d
❌ С отличиями: %d
⚠️ Ошибок: %d`, s.Total, s.Passed, s.Failed, s.Errors)

	if s.Passed+s.Failed > 0 {
		text += fmt.Sprintf("\nСредняя схожесть: %.3f", s.MeanSimilarity)
	}
	return text
}
