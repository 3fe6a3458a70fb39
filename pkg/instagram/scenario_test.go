package instagram

import (
	"context"
	"os"
	"testing"
)

// TestScenario_LoginEditRepeat повторяет сквозной сценарий: первый вход
// создаёт сессию и метаданные, правка bio записывается в документ,
// повторная правка тем же значением — no-op без сдвига last_updated,
// повторный вход переиспользует сессию.
func TestScenario_LoginEditRepeat(t *testing.T) {
	state := &fakeState{
		accept: map[string]bool{"p1": true},
	}
	state.info.Username = "alice"
	state.info.FullName = "Alice"

	m := newTestManager(t, state)
	ctx := context.Background()
	creds := testCreds("alice")

	// Первый вход: сетевая авторизация и файл сессии
	result := m.LoginAccount(ctx, "alice", creds)
	if !result.Success || result.Message != "Login successful" {
		t.Fatalf("неожиданный результат входа: %+v", result)
	}
	if len(state.attempts) != 1 {
		t.Fatalf("ожидалась одна попытка входа, выполнено %d", len(state.attempts))
	}
	if _, err := os.Stat(m.Sessions.Path("alice")); err != nil {
		t.Fatalf("файл сессии не создан: %v", err)
	}

	// Правка bio попадает в документ метаданных
	if err := m.ChangeBio(ctx, "alice", creds, "hello"); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	record, err := m.Accounts.Get("alice")
	if err != nil || record == nil {
		t.Fatalf("запись не найдена: %v", err)
	}
	if record.Bio != "hello" {
		t.Fatalf("ожидалось bio=hello, получено %q", record.Bio)
	}
	editsAfterFirst := len(state.edits)
	firstUpdated := record.LastUpdated

	// Повторная правка тем же значением — no-op
	if err := m.ChangeBio(ctx, "alice", creds, "hello"); err != nil {
		t.Fatalf("no-op не должен возвращать ошибку: %v", err)
	}
	if len(state.edits) != editsAfterFirst {
		t.Fatalf("no-op не должен дёргать платформу")
	}
	record, err = m.Accounts.Get("alice")
	if err != nil || record == nil {
		t.Fatalf("запись не найдена: %v", err)
	}
	if !record.LastUpdated.Equal(firstUpdated) {
		t.Fatalf("no-op сдвинул last_updated")
	}

	// Повторный вход переиспользует сессию без сетевой авторизации
	result = m.LoginAccount(ctx, "alice", creds)
	if !result.Success || result.Message != "Session already exists" {
		t.Fatalf("неожиданный результат повторного входа: %+v", result)
	}
	if len(state.attempts) != 1 {
		t.Fatalf("повторный вход не должен авторизоваться по сети, попыток: %d", len(state.attempts))
	}
}
