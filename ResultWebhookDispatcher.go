package main

import (
	"bytes"
	"columnCalc/contracts"
	"fmt"
	json "github.com/bytedance/sonic"
	"net/http"
	"sync"
	"time"
)

const WebhookWorkersCount = 5

// ColumnWebhooks maps a subscribed formula to its webhook url.
type ColumnWebhooks map[string]string

type SheetWebhooks map[string]ColumnWebhooks

type EvaluationSendCommand struct {
	Webhook string
	SheetId string
	Formula string
}

// ResultWebhookDispatcher re-evaluates subscribed formulas whenever their
// column changes and POSTs the evaluation record to the subscriber.
type ResultWebhookDispatcher struct {
	queue    chan EvaluationSendCommand
	webhooks map[string]SheetWebhooks
	evaluate contracts.SheetEvaluator
	mutex    sync.RWMutex
}

func NewResultWebhookDispatcher(evaluate contracts.SheetEvaluator) *ResultWebhookDispatcher {
	return &ResultWebhookDispatcher{
		queue:    make(chan EvaluationSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
		evaluate: evaluate,
	}
}

func (manager *ResultWebhookDispatcher) Subscribe(canonicalSheetId string, canonicalColumnId string, formula string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if _, ok := manager.webhooks[canonicalSheetId]; !ok {
		manager.webhooks[canonicalSheetId] = SheetWebhooks{}
	}

	if _, ok := manager.webhooks[canonicalSheetId][canonicalColumnId]; !ok {
		manager.webhooks[canonicalSheetId][canonicalColumnId] = ColumnWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[canonicalSheetId][canonicalColumnId], formula)
	} else {
		manager.webhooks[canonicalSheetId][canonicalColumnId][formula] = webhookUrl
	}
}

func (manager *ResultWebhookDispatcher) Notify(canonicalSheetId string, canonicalColumnId string) {
	go manager.addToQueue(canonicalSheetId, canonicalColumnId)
}

func (manager *ResultWebhookDispatcher) addToQueue(canonicalSheetId string, canonicalColumnId string) {
	manager.mutex.RLock()
	commands := make([]EvaluationSendCommand, 0)
	if sheetWebhooks, ok := manager.webhooks[canonicalSheetId]; ok {
		for formula, webhook := range sheetWebhooks[canonicalColumnId] {
			commands = append(commands, EvaluationSendCommand{
				Webhook: webhook,
				SheetId: canonicalSheetId,
				Formula: formula,
			})
		}
	}
	manager.mutex.RUnlock()

	for _, command := range commands {
		manager.queue <- command
	}
}

func (manager *ResultWebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *ResultWebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *ResultWebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		// the evaluation record carries the error text itself, so a failed
		// formula still notifies the subscriber
		evaluation, _ := manager.evaluate(command.SheetId, command.Formula)
		if evaluation == nil {
			evaluation = &contracts.Evaluation{Formula: command.Formula}
		}

		payload, _ := json.Marshal(evaluation)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
