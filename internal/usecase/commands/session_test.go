//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"movecar/internal/domain/session"
	"movecar/internal/infra/kvstore"
	"movecar/internal/infra/sessionrepo"
	"movecar/internal/pkg/clock"
	"movecar/internal/pkg/config"
	"movecar/internal/pkg/errs"
	"movecar/internal/usecase/commands"
	"movecar/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDispatcher captures notifications and can simulate channel
// failures without touching the network.
type recordingDispatcher struct {
	sent []commands.Notification
	fail bool
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n commands.Notification) []commands.DispatchOutcome {
	d.sent = append(d.sent, n)
	if d.fail {
		return []commands.DispatchOutcome{{Channel: "pushplus", Err: errs.New("boom")}}
	}
	return []commands.DispatchOutcome{{Channel: "pushplus"}}
}

type fixture struct {
	cmds       commands.SessionCommands
	q          queries.SessionQueries
	dispatcher *recordingDispatcher
	clk        *clock.MockClock
	guard      commands.CooldownGuard
}

func newFixture(t *testing.T, notify config.NotifyConfig) *fixture {
	t.Helper()
	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := kvstore.NewMemoryStore(clk)
	repo := sessionrepo.NewRepository(store, cfg.Session)
	guard := sessionrepo.NewCooldown(store, cfg.Session.CooldownTTL)
	dispatcher := &recordingDispatcher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		cmds:       commands.NewSessionCommands(repo, guard, dispatcher, config.NewStaticSettings(notify), logger),
		q:          queries.NewSessionQueries(repo),
		dispatcher: dispatcher,
		clk:        clk,
		guard:      guard,
	}
}

func TestNotify(t *testing.T) {
	ctx := context.Background()
	alice := session.NewUserKey("alice")
	origin := "https://move.example.com"

	t.Run("セッション開始と通知内容", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "白色丰田"})
		loc, err := session.NewLocation(39.9, 116.4)
		require.NoError(t, err)

		err = f.cmds.Notify(ctx, alice, commands.NotifyInput{
			Message:      "挡路了",
			Location:     &loc,
			SessionToken: "tok-1",
		}, origin)
		require.NoError(t, err)

		snap, err := f.q.CheckStatus(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusWaiting, snap.Status)

		reqLoc, err := f.q.RequesterLocation(ctx, alice)
		require.NoError(t, err)
		require.NotNil(t, reqLoc)
		assert.Equal(t, 39.9, reqLoc.Lat)
		assert.Contains(t, reqLoc.AmapURL, "uri.amap.com")
		assert.Contains(t, reqLoc.AppleURL, "maps.apple.com")

		require.Len(t, f.dispatcher.sent, 1)
		n := f.dispatcher.sent[0]
		assert.Contains(t, n.Title, "白色丰田")
		assert.Contains(t, n.Body, "挡路了")
		assert.Equal(t, origin+"/owner-confirm?u=alice", n.ConfirmURL)
	})

	t.Run("空メッセージはデフォルト文言で通知", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{}, origin))

		require.Len(t, f.dispatcher.sent, 1)
		assert.Contains(t, f.dispatcher.sent[0].Body, session.DefaultMessage)
	})

	t.Run("EXTERNAL_URLが設定されていればoriginより優先", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主", ExternalURL: "https://cdn.example.net/"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{}, origin))

		require.Len(t, f.dispatcher.sent, 1)
		assert.Equal(t, "https://cdn.example.net/owner-confirm?u=alice", f.dispatcher.sent[0].ConfirmURL)
	})

	t.Run("クールダウン中の二回目はRateLimited", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))

		err := f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-2"}, origin)
		assert.ErrorIs(t, err, errs.ErrRateLimited)

		// 先行セッションはそのまま
		snap, err := f.q.CheckStatus(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusWaiting, snap.Status)
		assert.Len(t, f.dispatcher.sent, 1, "拒否された呼び出しは通知しない")
	})

	t.Run("クールダウン失効後は再送できる", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))

		f.clk.Add(61 * time.Second)

		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-2"}, origin))
		snap, err := f.q.CheckStatus(ctx, alice, "tok-2")
		require.NoError(t, err)
		assert.Equal(t, session.StatusWaiting, snap.Status, "新しいnotifyは無条件で上書き")
	})

	t.Run("ディスパッチ失敗でもnotifyは成功しクールダウンは残る", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		f.dispatcher.fail = true

		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))

		locked, err := f.guard.InCooldown(ctx, alice)
		require.NoError(t, err)
		assert.True(t, locked, "ロックはディスパッチ前に書かれる")

		snap, err := f.q.CheckStatus(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusWaiting, snap.Status)
	})

	t.Run("別ユーザーはレート制限を共有しない", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{}, origin))
		assert.NoError(t, f.cmds.Notify(ctx, session.NewUserKey("bob"), commands.NotifyInput{}, origin))
	})

	t.Run("長すぎるメッセージは拒否", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		long := make([]byte, 0, session.MaxMessageLength+1)
		for range session.MaxMessageLength + 1 {
			long = append(long, 'a')
		}
		err := f.cmds.Notify(ctx, alice, commands.NotifyInput{Message: string(long)}, origin)
		assert.ErrorIs(t, err, errs.ErrMessageTooLong)
		assert.Empty(t, f.dispatcher.sent)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	alice := session.NewUserKey("alice")
	origin := "https://move.example.com"

	t.Run("waiting→confirmedとowner位置", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))

		loc, err := session.NewLocation(31.23, 121.47)
		require.NoError(t, err)
		require.NoError(t, f.cmds.Confirm(ctx, alice, &loc))

		snap, err := f.q.CheckStatus(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusConfirmed, snap.Status)
		require.NotNil(t, snap.OwnerLocation)
		assert.NotEmpty(t, snap.OwnerLocation.AmapURL)
		assert.NotEmpty(t, snap.OwnerLocation.AppleURL)
	})

	t.Run("位置なしconfirm", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))
		require.NoError(t, f.cmds.Confirm(ctx, alice, nil))

		snap, err := f.q.CheckStatus(ctx, alice, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusConfirmed, snap.Status)
		assert.Nil(t, snap.OwnerLocation)
	})

	t.Run("セッション不在のconfirmは成功扱いのno-op", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		assert.NoError(t, f.cmds.Confirm(ctx, alice, nil))

		snap, err := f.q.CheckStatus(ctx, alice, "")
		require.NoError(t, err)
		assert.Equal(t, session.StatusNone, snap.Status)
	})

	t.Run("confirmはレート制限の影響を受けない", func(t *testing.T) {
		f := newFixture(t, config.NotifyConfig{CarTitle: "车主"})
		require.NoError(t, f.cmds.Notify(ctx, alice, commands.NotifyInput{SessionToken: "tok-1"}, origin))

		// クールダウン中でもconfirmは通る
		require.NoError(t, f.cmds.Confirm(ctx, alice, nil))
		require.NoError(t, f.cmds.Confirm(ctx, alice, nil))
	})
}
