// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Mailbox queues messages in send order. Send is safe to call from
// timer goroutines; Drain and Take belong to the test goroutine.
type Mailbox struct {
	mu       sync.Mutex
	messages []tea.Msg
}

// Send appends message. Pass it wherever a program's Send is expected.
func (mailbox *Mailbox) Send(message tea.Msg) {
	mailbox.mu.Lock()
	defer mailbox.mu.Unlock()
	mailbox.messages = append(mailbox.messages, message)
}

// Len reports how many messages are waiting.
func (mailbox *Mailbox) Len() int {
	mailbox.mu.Lock()
	defer mailbox.mu.Unlock()
	return len(mailbox.messages)
}

// Take removes and returns every waiting message.
func (mailbox *Mailbox) Take() []tea.Msg {
	mailbox.mu.Lock()
	defer mailbox.mu.Unlock()
	messages := mailbox.messages
	mailbox.messages = nil
	return messages
}

// Drain hands waiting messages to update one at a time until none are
// left, including any that update itself sends, and returns how many
// it delivered.
func (mailbox *Mailbox) Drain(update func(tea.Msg)) int {
	delivered := 0
	for {
		mailbox.mu.Lock()
		if len(mailbox.messages) == 0 {
			mailbox.mu.Unlock()
			return delivered
		}
		message := mailbox.messages[0]
		mailbox.messages = mailbox.messages[1:]
		mailbox.mu.Unlock()

		update(message)
		delivered++
	}
}
