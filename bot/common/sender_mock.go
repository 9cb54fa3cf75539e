package common

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return args.Get(0).(tgbotapi.Message), args.Error(1)
}

func (m *MockSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tgbotapi.APIResponse), args.Error(1)
}

// SentMessages returns every MessageConfig passed to Send, in order
func (m *MockSender) SentMessages() []tgbotapi.MessageConfig {
	var sent []tgbotapi.MessageConfig
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if msg, ok := call.Arguments.Get(0).(tgbotapi.MessageConfig); ok {
			sent = append(sent, msg)
		}
	}
	return sent
}

// SentEdits returns every EditMessageTextConfig passed to Send, in order
func (m *MockSender) SentEdits() []tgbotapi.EditMessageTextConfig {
	var sent []tgbotapi.EditMessageTextConfig
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if edit, ok := call.Arguments.Get(0).(tgbotapi.EditMessageTextConfig); ok {
			sent = append(sent, edit)
		}
	}
	return sent
}

// Requests returns every Chattable passed to Request, in order
func (m *MockSender) Requests() []tgbotapi.Chattable {
	var sent []tgbotapi.Chattable
	for _, call := range m.Calls {
		if call.Method == "Request" {
			sent = append(sent, call.Arguments.Get(0).(tgbotapi.Chattable))
		}
	}
	return sent
}
