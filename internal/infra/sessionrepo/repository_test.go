//go:build unit

package sessionrepo_test

import (
	"context"
	"testing"
	"time"

	"movecar/internal/domain/session"
	"movecar/internal/infra/kvstore"
	"movecar/internal/infra/sessionrepo"
	"movecar/internal/pkg/clock"
	"movecar/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*sessionrepo.Repository, *kvstore.MemoryStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := kvstore.NewMemoryStore(clk)
	return sessionrepo.NewRepository(store, config.NewTestConfig().Session), store, clk
}

func placed(lat, lng float64) *session.PlacedLocation {
	return &session.PlacedLocation{
		Location: session.Location{Lat: lat, Lng: lng},
		AmapURL:  "https://uri.amap.com/marker?position=x",
		AppleURL: "https://maps.apple.com/?ll=x",
	}
}

func TestRepository_OpenWaiting(t *testing.T) {
	ctx := context.Background()
	user := session.NewUserKey("alice")

	t.Run("statusと位置が読み戻せる", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		stored := placed(39.9, 116.4)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", stored))

		rec, err := repo.FindStatus(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, session.StatusWaiting, rec.Status)
		assert.Equal(t, "tok-1", rec.Token)

		loc, err := repo.FindRequesterLocation(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, loc)
		if diff := cmp.Diff(stored, loc); diff != "" {
			t.Errorf("requester location mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("位置なしでも開ける", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))

		loc, err := repo.FindRequesterLocation(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("前回サイクルのowner位置を消す", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))
		existed, err := repo.Confirm(ctx, user, placed(31.2, 121.4))
		require.NoError(t, err)
		require.True(t, existed)

		// 新しいnotifyで古いconfirm位置が漏れてはならない
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-2", nil))
		loc, err := repo.FindOwnerLocation(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("confirm済みセッションも無条件で上書き", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))
		_, err := repo.Confirm(ctx, user, nil)
		require.NoError(t, err)

		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-2", nil))
		rec, err := repo.FindStatus(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, session.StatusWaiting, rec.Status)
		assert.Equal(t, "tok-2", rec.Token)
	})
}

func TestRepository_Confirm(t *testing.T) {
	ctx := context.Background()
	user := session.NewUserKey("alice")

	t.Run("waitingからconfirmedへ", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))

		existed, err := repo.Confirm(ctx, user, placed(31.23, 121.47))
		require.NoError(t, err)
		assert.True(t, existed)

		rec, err := repo.FindStatus(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, session.StatusConfirmed, rec.Status)
		assert.Equal(t, "tok-1", rec.Token, "confirmはトークンを保存する")

		loc, err := repo.FindOwnerLocation(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, 31.23, loc.Lat)
	})

	t.Run("セッション不在のconfirmは何も書かない", func(t *testing.T) {
		repo, store, _ := newRepo(t)

		existed, err := repo.Confirm(ctx, user, placed(31.23, 121.47))
		require.NoError(t, err)
		assert.False(t, existed)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("期限切れセッションのconfirmも不在扱い", func(t *testing.T) {
		repo, _, clk := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))

		clk.Add(31 * time.Minute) // SESSION_TTL=30m を超過

		existed, err := repo.Confirm(ctx, user, nil)
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("confirm後のstatusは短いTTLで失効する", func(t *testing.T) {
		repo, _, clk := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", nil))
		_, err := repo.Confirm(ctx, user, placed(31.2, 121.4))
		require.NoError(t, err)

		clk.Add(11 * time.Minute) // CONFIRM_TTL=10m を超過

		rec, err := repo.FindStatus(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, rec, "statusとowner位置は一緒に失効する")

		loc, err := repo.FindOwnerLocation(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, loc)
	})
}

func TestRepository_Namespace(t *testing.T) {
	ctx := context.Background()

	t.Run("ユーザー間の分離", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, session.NewUserKey("alice"), "tok-1", placed(39.9, 116.4)))

		rec, err := repo.FindStatus(ctx, session.NewUserKey("bob"))
		require.NoError(t, err)
		assert.Nil(t, rec)

		loc, err := repo.FindRequesterLocation(ctx, session.NewUserKey("bob"))
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("大文字小文字は同一セッション", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, session.NewUserKey("Alice"), "tok-1", nil))

		rec, err := repo.FindStatus(ctx, session.NewUserKey("alice"))
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "tok-1", rec.Token)
	})
}

func TestRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	user := session.NewUserKey("alice")

	t.Run("期限切れは未作成と区別できない", func(t *testing.T) {
		repo, _, clk := newRepo(t)
		require.NoError(t, repo.OpenWaiting(ctx, user, "tok-1", placed(39.9, 116.4)))

		clk.Add(31 * time.Minute)

		rec, err := repo.FindStatus(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, rec)

		// 位置キーは長いTTLなのでまだ生きている
		loc, err := repo.FindRequesterLocation(ctx, user)
		require.NoError(t, err)
		assert.NotNil(t, loc)

		clk.Add(30 * time.Minute) // LOCATION_TTL=1h も超過
		loc, err = repo.FindRequesterLocation(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, loc)
	})
}

func TestCooldown(t *testing.T) {
	ctx := context.Background()
	user := session.NewUserKey("alice")

	t.Run("armとTTL失効", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		store := kvstore.NewMemoryStore(clk)
		cd := sessionrepo.NewCooldown(store, 60*time.Second)

		locked, err := cd.InCooldown(ctx, user)
		require.NoError(t, err)
		assert.False(t, locked)

		require.NoError(t, cd.Arm(ctx, user))

		locked, err = cd.InCooldown(ctx, user)
		require.NoError(t, err)
		assert.True(t, locked)

		clk.Add(61 * time.Second)
		locked, err = cd.InCooldown(ctx, user)
		require.NoError(t, err)
		assert.False(t, locked, "解放はTTL失効のみ")
	})

	t.Run("ユーザー毎に独立", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		store := kvstore.NewMemoryStore(clk)
		cd := sessionrepo.NewCooldown(store, 60*time.Second)

		require.NoError(t, cd.Arm(ctx, session.NewUserKey("alice")))
		locked, err := cd.InCooldown(ctx, session.NewUserKey("bob"))
		require.NoError(t, err)
		assert.False(t, locked)
	})
}
