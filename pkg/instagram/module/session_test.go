package module

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
	"aig_go/pkg/storage"
)

// stubState разделяется всеми клиентами одной фабрики и считает
// сетевые попытки входа.
type stubState struct {
	attempts []string        // пароли в порядке попыток
	accept   map[string]bool // какие пароли платформа принимает
}

// stubClient — клиент-заглушка: сетевых вызовов нет, сессия — это
// JSON с паролем, по которому прошёл вход.
type stubClient struct {
	state    *stubState
	settings []byte
}

func newStubFactory(state *stubState) api.Factory {
	return func() api.Client { return &stubClient{state: state} }
}

func (c *stubClient) SetDevice(api.DeviceSettings) {}
func (c *stubClient) SetUserAgent(string)          {}
func (c *stubClient) SetCountry(string)            {}
func (c *stubClient) SetCountryCode(int)           {}

func (c *stubClient) LoadSettings(data []byte) error {
	if !json.Valid(data) {
		return errors.New("настройки не разбираются")
	}
	c.settings = data
	return nil
}

func (c *stubClient) DumpSettings() ([]byte, error) {
	if c.settings == nil {
		return []byte(`{}`), nil
	}
	return c.settings, nil
}

func (c *stubClient) Login(_ context.Context, _, password string) error {
	c.state.attempts = append(c.state.attempts, password)
	if !c.state.accept[password] {
		return api.ErrBadPassword
	}
	c.settings = []byte(`{"auth_password": "` + password + `"}`)
	return nil
}

func (c *stubClient) AccountInfo(context.Context) (*api.AccountInfo, error) { return nil, nil }
func (c *stubClient) AccountEdit(context.Context, api.AccountEdit) error    { return nil }
func (c *stubClient) AccountChangePicture(context.Context, []byte) error    { return nil }
func (c *stubClient) UserIDFromUsername(context.Context, string) (int64, error) {
	return 0, nil
}
func (c *stubClient) UserFollow(context.Context, int64) error   { return nil }
func (c *stubClient) UserUnfollow(context.Context, int64) error { return nil }
func (c *stubClient) UserFollowers(context.Context, int64, int) ([]api.UserShort, error) {
	return nil, nil
}
func (c *stubClient) UserFollowing(context.Context, int64, int) ([]api.UserShort, error) {
	return nil, nil
}
func (c *stubClient) UserMedias(context.Context, int64, int) ([]api.Media, error) {
	return nil, nil
}
func (c *stubClient) PhotoUpload(context.Context, []byte, string) (*api.Media, error) {
	return nil, nil
}
func (c *stubClient) PhotoUploadToStory(context.Context, []byte) (*api.Media, error) {
	return nil, nil
}
func (c *stubClient) DirectSend(context.Context, string, []int64) error { return nil }
func (c *stubClient) MediaPKFromURL(string) (string, error)             { return "", nil }
func (c *stubClient) MediaLike(context.Context, string) error           { return nil }
func (c *stubClient) MediaComment(context.Context, string, string) error {
	return nil
}
func (c *stubClient) MediaInfo(context.Context, string) (*api.Media, error) { return nil, nil }
func (c *stubClient) DownloadByURL(context.Context, string) ([]byte, error) { return nil, nil }

func newTestSessions(t *testing.T) *storage.SessionStore {
	t.Helper()
	sessions, err := storage.NewSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("не удалось создать хранилище сессий: %v", err)
	}
	return sessions
}

// TestInitialization_ReusesSession проверяет, что при живой сессии
// сетевой вход не выполняется вовсе.
func TestInitialization_ReusesSession(t *testing.T) {
	sessions := newTestSessions(t)
	if err := sessions.Save("alice", []byte(`{"auth_password": "старый"}`)); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	state := &stubState{accept: map[string]bool{"p1": true}}
	creds := models.CredentialSet{Identity: "alice", PrimarySecret: "p1"}

	if _, err := Modf_AccountInitialization(context.Background(), sessions, newStubFactory(state), "alice", creds); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(state.attempts) != 0 {
		t.Fatalf("ожидалось ноль попыток входа, выполнено %d", len(state.attempts))
	}
}

// TestInitialization_FallbackOrder проверяет порядок перебора паролей и то,
// что сохранённая сессия отражает вход по резервному паролю.
func TestInitialization_FallbackOrder(t *testing.T) {
	sessions := newTestSessions(t)
	state := &stubState{accept: map[string]bool{"p2": true}}
	creds := models.CredentialSet{Identity: "alice", PrimarySecret: "p1", FallbackSecret: "p2"}

	if _, err := Modf_AccountInitialization(context.Background(), sessions, newStubFactory(state), "alice", creds); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(state.attempts) != 2 || state.attempts[0] != "p1" || state.attempts[1] != "p2" {
		t.Fatalf("неверный порядок попыток: %v", state.attempts)
	}

	data, err := sessions.Load("alice")
	if err != nil {
		t.Fatalf("сессия не сохранена: %v", err)
	}
	if !strings.Contains(string(data), "p2") {
		t.Fatalf("сессия не отражает вход по резервному паролю: %s", data)
	}
}

// TestInitialization_CorruptRecovery проверяет восстановление после
// повреждённого файла сессии: вход выполняется заново, файл перезаписывается.
func TestInitialization_CorruptRecovery(t *testing.T) {
	sessions := newTestSessions(t)
	if err := os.WriteFile(sessions.Path("alice"), []byte("{мусор"), 0o644); err != nil {
		t.Fatalf("не удалось подготовить файл: %v", err)
	}

	state := &stubState{accept: map[string]bool{"p1": true}}
	creds := models.CredentialSet{Identity: "alice", PrimarySecret: "p1"}

	if _, err := Modf_AccountInitialization(context.Background(), sessions, newStubFactory(state), "alice", creds); err != nil {
		t.Fatalf("ожидалось восстановление, получена ошибка: %v", err)
	}
	if len(state.attempts) != 1 {
		t.Fatalf("ожидалась одна попытка входа, выполнено %d", len(state.attempts))
	}

	data, err := sessions.Load("alice")
	if err != nil {
		t.Fatalf("файл сессии должен стать валидным: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("файл сессии остался повреждённым")
	}
}

// TestInitialization_BothFail проверяет фатальную ошибку после
// исчерпания обоих паролей.
func TestInitialization_BothFail(t *testing.T) {
	sessions := newTestSessions(t)
	state := &stubState{accept: map[string]bool{}}
	creds := models.CredentialSet{Identity: "alice", PrimarySecret: "p1", FallbackSecret: "p2"}

	_, err := Modf_AccountInitialization(context.Background(), sessions, newStubFactory(state), "alice", creds)
	var authErr *AuthenticationFailedError
	if !errors.As(err, &authErr) {
		t.Fatalf("ожидалась AuthenticationFailedError, получено %v", err)
	}
	if authErr.Identity != "alice" {
		t.Fatalf("в ошибке не тот identity: %s", authErr.Identity)
	}
	if len(state.attempts) != 2 {
		t.Fatalf("ожидались две попытки, выполнено %d", len(state.attempts))
	}
	if _, loadErr := sessions.Load("alice"); !errors.Is(loadErr, storage.ErrSessionNotFound) {
		t.Fatalf("после провала сессия не должна существовать: %v", loadErr)
	}
}

// TestInitialization_NoFallback проверяет, что без резервного пароля
// выполняется ровно одна попытка.
func TestInitialization_NoFallback(t *testing.T) {
	sessions := newTestSessions(t)
	state := &stubState{accept: map[string]bool{}}
	creds := models.CredentialSet{Identity: "alice", PrimarySecret: "p1"}

	_, err := Modf_AccountInitialization(context.Background(), sessions, newStubFactory(state), "alice", creds)
	var authErr *AuthenticationFailedError
	if !errors.As(err, &authErr) {
		t.Fatalf("ожидалась AuthenticationFailedError, получено %v", err)
	}
	if len(state.attempts) != 1 {
		t.Fatalf("ожидалась одна попытка, выполнено %d", len(state.attempts))
	}
}
