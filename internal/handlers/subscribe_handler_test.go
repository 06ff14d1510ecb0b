package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"knowhive/internal/mailer"
	"knowhive/model"
)

type fakeSubscriberStore struct {
	subscribers []model.Subscriber
	dup         bool
	err         error
}

func (f *fakeSubscriberStore) Create(ctx context.Context, s model.Subscriber) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.dup {
		return true, nil
	}
	f.subscribers = append(f.subscribers, s)
	return false, nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(m mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func subscribeApp(store *fakeSubscriberStore, sender *fakeSender) *fiber.App {
	h := &SubscribeHandler{Store: store, Mail: sender, From: "news@knowhive.app", Log: zap.NewNop().Sugar()}
	app := fiber.New()
	app.Post("/subscribe", h.Subscribe)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestSubscribeSendsWelcomeMail(t *testing.T) {
	store := &fakeSubscriberStore{}
	sender := &fakeSender{}
	app := subscribeApp(store, sender)

	status, err := postJSON(app, "/subscribe", `{"email":"a@x.com","name":"Ada"}`)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if len(store.subscribers) != 1 {
		t.Fatalf("expected 1 subscriber, got %d", len(store.subscribers))
	}
	if store.subscribers[0].UnsubscribeToken == "" {
		t.Fatalf("expected an unsubscribe token")
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "a@x.com" {
		t.Fatalf("expected a welcome mail to a@x.com, got %+v", sender.sent)
	}
}

func TestSubscribeMailFailureIs500(t *testing.T) {
	store := &fakeSubscriberStore{}
	sender := &fakeSender{err: errors.New("smtp down")}
	app := subscribeApp(store, sender)

	status, err := postJSON(app, "/subscribe", `{"email":"a@x.com"}`)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}

func TestSubscribeDuplicateSkipsMail(t *testing.T) {
	store := &fakeSubscriberStore{dup: true}
	sender := &fakeSender{}
	app := subscribeApp(store, sender)

	status, err := postJSON(app, "/subscribe", `{"email":"a@x.com"}`)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("duplicate subscription must not resend the welcome mail")
	}
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	store := &fakeSubscriberStore{}
	sender := &fakeSender{}
	app := subscribeApp(store, sender)

	status, err := postJSON(app, "/subscribe", `{"email":"not-an-email"}`)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(store.subscribers) != 0 {
		t.Fatalf("invalid payload must not reach the store")
	}
}
