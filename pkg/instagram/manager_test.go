package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
	"aig_go/pkg/storage"
)

// fakeState разделяется всеми клиентами одной фабрики: через него тесты
// задают ответы платформы и считают сетевые вызовы.
type fakeState struct {
	attempts []string // пароли в порядке попыток входа
	accept   map[string]bool

	edits []api.AccountEdit

	info    api.AccountInfo
	infoErr error

	userID     int64
	resolveErr error
	followErr  error
	likeErr    error

	media    api.Media
	mediaErr error

	download    []byte
	downloadErr error
}

type fakeClient struct {
	state    *fakeState
	settings []byte
}

func newFakeFactory(state *fakeState) api.Factory {
	return func() api.Client { return &fakeClient{state: state} }
}

func (c *fakeClient) SetDevice(api.DeviceSettings) {}
func (c *fakeClient) SetUserAgent(string)          {}
func (c *fakeClient) SetCountry(string)            {}
func (c *fakeClient) SetCountryCode(int)           {}

func (c *fakeClient) LoadSettings(data []byte) error {
	if !json.Valid(data) {
		return errors.New("настройки не разбираются")
	}
	c.settings = data
	return nil
}

func (c *fakeClient) DumpSettings() ([]byte, error) {
	if c.settings == nil {
		return []byte(`{}`), nil
	}
	return c.settings, nil
}

func (c *fakeClient) Login(_ context.Context, _, password string) error {
	c.state.attempts = append(c.state.attempts, password)
	if !c.state.accept[password] {
		return api.ErrBadPassword
	}
	c.settings = []byte(`{"auth_password": "` + password + `"}`)
	return nil
}

func (c *fakeClient) AccountInfo(context.Context) (*api.AccountInfo, error) {
	if c.state.infoErr != nil {
		return nil, c.state.infoErr
	}
	info := c.state.info
	return &info, nil
}

func (c *fakeClient) AccountEdit(_ context.Context, edit api.AccountEdit) error {
	c.state.edits = append(c.state.edits, edit)
	return nil
}

func (c *fakeClient) AccountChangePicture(context.Context, []byte) error { return nil }

func (c *fakeClient) UserIDFromUsername(context.Context, string) (int64, error) {
	if c.state.resolveErr != nil {
		return 0, c.state.resolveErr
	}
	return c.state.userID, nil
}

func (c *fakeClient) UserFollow(context.Context, int64) error   { return c.state.followErr }
func (c *fakeClient) UserUnfollow(context.Context, int64) error { return c.state.followErr }
func (c *fakeClient) UserFollowers(context.Context, int64, int) ([]api.UserShort, error) {
	return nil, nil
}
func (c *fakeClient) UserFollowing(context.Context, int64, int) ([]api.UserShort, error) {
	return nil, nil
}
func (c *fakeClient) UserMedias(context.Context, int64, int) ([]api.Media, error) {
	return nil, nil
}

func (c *fakeClient) PhotoUpload(context.Context, []byte, string) (*api.Media, error) {
	media := c.state.media
	return &media, nil
}

func (c *fakeClient) PhotoUploadToStory(context.Context, []byte) (*api.Media, error) {
	media := c.state.media
	return &media, nil
}

func (c *fakeClient) DirectSend(context.Context, string, []int64) error { return nil }

func (c *fakeClient) MediaPKFromURL(rawURL string) (string, error) {
	return api.MediaPKFromURL(rawURL)
}

func (c *fakeClient) MediaLike(context.Context, string) error { return c.state.likeErr }
func (c *fakeClient) MediaComment(context.Context, string, string) error {
	return c.state.likeErr
}

func (c *fakeClient) MediaInfo(context.Context, string) (*api.Media, error) {
	if c.state.mediaErr != nil {
		return nil, c.state.mediaErr
	}
	media := c.state.media
	return &media, nil
}

func (c *fakeClient) DownloadByURL(context.Context, string) ([]byte, error) {
	if c.state.downloadErr != nil {
		return nil, c.state.downloadErr
	}
	return c.state.download, nil
}

// newTestManager собирает диспетчер на временных каталогах.
func newTestManager(t *testing.T, state *fakeState) *Manager {
	t.Helper()
	dir := t.TempDir()
	sessions, err := storage.NewSessionStore(dir + "/session")
	if err != nil {
		t.Fatalf("не удалось создать хранилище сессий: %v", err)
	}
	accounts := storage.NewAccountStore(dir + "/accounts.json")
	manager, err := NewManager(sessions, accounts, newFakeFactory(state), dir+"/profiles", dir+"/media")
	if err != nil {
		t.Fatalf("не удалось создать диспетчер: %v", err)
	}
	return manager
}

// testCreds — набор паролей по умолчанию для тестов.
func testCreds(identity string) models.CredentialSet {
	return models.CredentialSet{Identity: identity, PrimarySecret: "p1"}
}

// seedSession кладёт готовую сессию, чтобы действия не выполняли вход.
func seedSession(t *testing.T, m *Manager, identity string) {
	t.Helper()
	if err := m.Sessions.Save(identity, []byte(`{"auth_password": "p1"}`)); err != nil {
		t.Fatalf("не удалось сохранить сессию: %v", err)
	}
}
