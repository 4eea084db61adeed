package td

import (
	"bytes"
	"iter"
	"log"
	"testing"
	"time"

	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/ecs"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Spawn.Seed = 7
	return cfg
}

// quietSpawner keeps the spawner from adding enemies during a test.
func quietSpawner(cfg config.Config) config.Config {
	cfg.Spawn.Period = time.Hour
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) (*Game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	g, err := New(cfg, WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	return g, &buf
}

func spawnEnemy(g *Game, pos Vec3) ecs.EntityId {
	s := g.Stores()
	id := g.World().Spawn()
	s.Transforms.Set(id, Transform{Translation: pos})
	s.Sprites.Set(id, Sprite{Visual: g.Assets().Enemy})
	s.Enemies.Set(id, Enemy{})
	return id
}

func count(seq iter.Seq2[ecs.EntityId, Vec3]) int {
	return ecs.Count(seq)
}
