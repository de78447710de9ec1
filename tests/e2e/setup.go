//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"movecar/cmd/bootstrap"
	"movecar/cmd/bootstrap/components"
	"movecar/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	// プロセス内でDB indexを使い回してテスト同士を分離する
	redisDBCounter int
	redisDBMu      sync.Mutex
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*goredis.Client, *gin.Engine, config.Config) {
	redisInfo := startContainers(t)

	storeConfig := prepareStore(t, redisInfo)

	router, cfg, app := buildE2EApp(storeConfig)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	client := goredis.NewClient(&goredis.Options{
		Addr: storeConfig.Addr,
		DB:   storeConfig.DB,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	slog.Info("E2E環境の準備が完了しました",
		"redis_host", redisInfo.Host,
		"redis_port", redisInfo.Port.Port(),
		"redis_db", storeConfig.DB)

	return client, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")

	return redisInfo
}

// ------------------------------------------------------------
// ストア準備関数
// スイート毎に別のRedis論理DBを割り当てて衝突を避ける
// ------------------------------------------------------------
func prepareStore(t *testing.T, redisInfo ContainerInfo) config.StoreConfig {
	redisDBMu.Lock()
	db := redisDBCounter % 16
	redisDBCounter++
	redisDBMu.Unlock()

	storeConfig := config.StoreConfig{
		Driver:  "redis",
		Addr:    fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port()),
		DB:      db,
		Timeout: 3 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := goredis.NewClient(&goredis.Options{Addr: storeConfig.Addr, DB: db})
	defer func() { _ = client.Close() }()
	require.NoError(t, client.FlushDB(ctx).Err(), "テスト用Redis DBの初期化に失敗")

	return storeConfig
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(storeConfig config.StoreConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config {
				return createTestConfig(storeConfig)
			},
			func(c config.Config) config.Settings {
				return config.NewStaticSettings(c.Notify)
			},
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			bootstrap.NewLogger,
		),
		bootstrap.StoreModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, cfg, app
}

func createTestConfig(storeConfig config.StoreConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Store = storeConfig
	// クールダウンを短くして再送系のテストを現実的な時間に収める
	testConfig.Session.CooldownTTL = 2 * time.Second
	return testConfig
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Redisコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd: []string{
				"redis-server",
				"--save", "", // 永続化を無効にしてテストを軽くする
				"--appendonly", "no",
			},
			WaitingFor: wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Name:       "redis-e2e",
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "Redisコンテナの起動に失敗")

		// コンテナの手動クリーンアップを登録 (RYUK無効時用)
		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Redisコンテナの終了に失敗しました", "error", err.Error())
				}
			}
		})
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Redis  *goredis.Client // 各テストで状態を確認／リセットするための直結クライアント
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	client, router, cfg := setupE2EEnvironment(t)
	s.Redis = client
	s.Router = router
	s.Config = cfg
	require.NotNil(t, client, "Redisクライアントのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// サブテスト毎にストアを空にして独立させる
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(s.T(), s.Redis.FlushDB(ctx).Err(), "Failed to reset store state")
}
