package store

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/termfolio/internal/model"
)

func TestInboxRecordsMessages(t *testing.T) {
	st, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	calls := 0
	st.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	ctx := context.Background()
	first, err := st.InsertMessage(ctx, model.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.Ref == "" {
		t.Fatalf("expected a ref")
	}
	if _, err := st.InsertMessage(ctx, model.ContactMessage{Name: "Linus", Email: "l@example.com", Message: "hey"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := st.CountMessages(ctx)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 messages, got %d (%v)", n, err)
	}
	msgs, err := st.ListMessages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Name != "Ada" || msgs[1].Name != "Linus" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
	if !msgs[0].CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at to round-trip")
	}
}

func TestInboxIsPerProcess(t *testing.T) {
	a, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()
	b, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	ctx := context.Background()
	if _, err := a.InsertMessage(ctx, model.ContactMessage{Name: "x", Email: "x@y", Message: "z"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	n, err := b.CountMessages(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected separate inboxes, got %d", n)
	}
}
