//go:build unit

package session_test

import (
	"strings"
	"testing"

	"movecar/internal/domain/session"
	"movecar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserKey(t *testing.T) {
	t.Run("ユーザーキー正規化", func(t *testing.T) {
		cases := []struct {
			name string
			in   string
			want string
		}{
			{name: "小文字化", in: "Alice", want: "alice"},
			{name: "全て大文字", in: "BOB", want: "bob"},
			{name: "空文字はdefault", in: "", want: "default"},
			{name: "空白のみはdefault", in: "   ", want: "default"},
			{name: "前後空白の除去", in: " Carol ", want: "carol"},
			{name: "既に小文字はそのまま", in: "dave", want: "dave"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, session.NewUserKey(tc.in).String())
			})
		}
	})

	t.Run("大文字小文字は同一キー", func(t *testing.T) {
		assert.Equal(t, session.NewUserKey("Alice"), session.NewUserKey("aLICE"))
	})
}

func TestMessage(t *testing.T) {
	t.Run("空メッセージはデフォルト文言", func(t *testing.T) {
		m, err := session.NewMessage("")
		require.NoError(t, err)
		assert.Equal(t, session.DefaultMessage, m.String())
	})

	t.Run("通常メッセージはそのまま", func(t *testing.T) {
		m, err := session.NewMessage("麻烦挪下车，谢谢")
		require.NoError(t, err)
		assert.Equal(t, "麻烦挪下车，谢谢", m.String())
	})

	t.Run("上限超過はエラー", func(t *testing.T) {
		_, err := session.NewMessage(strings.Repeat("あ", session.MaxMessageLength+1))
		assert.ErrorIs(t, err, errs.ErrMessageTooLong)
	})

	t.Run("上限ちょうどはOK", func(t *testing.T) {
		_, err := session.NewMessage(strings.Repeat("a", session.MaxMessageLength))
		assert.NoError(t, err)
	})
}

func TestLocation(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{name: "北京OK", lat: 39.9, lng: 116.4},
		{name: "境界値OK", lat: 90, lng: -180},
		{name: "緯度超過NG", lat: 90.1, lng: 0, wantErr: true},
		{name: "経度超過NG", lat: 0, lng: 180.5, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.NewLocation(tc.lat, tc.lng)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidLocation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession(t *testing.T) {
	t.Run("waiting開始とトークン保持", func(t *testing.T) {
		s := session.NewWaiting("tok-1")
		assert.Equal(t, session.StatusWaiting, s.Status())
		assert.Equal(t, "tok-1", s.Token())
	})

	t.Run("confirmはトークンを保存する", func(t *testing.T) {
		s := session.NewWaiting("tok-1").Confirm()
		assert.Equal(t, session.StatusConfirmed, s.Status())
		assert.Equal(t, "tok-1", s.Token())
	})

	t.Run("confirm済みの再confirmは冪等", func(t *testing.T) {
		s := session.NewWaiting("tok-1").Confirm()
		assert.Equal(t, s, s.Confirm())
	})

	t.Run("トークン照合", func(t *testing.T) {
		s := session.NewWaiting("tok-1")
		assert.True(t, s.Matches("tok-1"))
		assert.False(t, s.Matches("tok-2"))
		assert.False(t, s.Matches(""))

		// トークンなしで開かれたセッションは空トークンの照会に一致する
		anon := session.NewWaiting("")
		assert.True(t, anon.Matches(""))
	})

	t.Run("不正ステータスの復元はnoneに落ちる", func(t *testing.T) {
		s := session.Reconstruct(session.Status("garbage"), "tok")
		assert.Equal(t, session.StatusNone, s.Status())
	})
}
