//go:build e2e

package containers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce      sync.Once
	redisContainer testcontainers.Container
	redisErr       error
)

// StartRedis returns the host:port of a shared redis:7 container.
func StartRedis(t *testing.T) string {
	t.Helper()

	redisOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}
		redisContainer, redisErr = startGenericContainer(req, 120)
	})
	require.NoError(t, redisErr, "Redisコンテナの起動に失敗")

	info, err := getContainerHostPort(redisContainer, "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")
	return info.Addr()
}
