package ecs

// Bundle attaches one component to a freshly spawned entity.
type Bundle func(id EntityId)

// With builds a Bundle that stores value in c.
func With[T any](c *Components[T], value T) Bundle {
	return func(id EntityId) {
		c.Set(id, value)
	}
}

// Commands provides a buffer for deferred world operations that are executed at the end of a frame.
// This prevents structural changes to the world while systems iterate it.
type Commands struct {
	spawns   []spawnCommand
	despawns []EntityId
	defers   []func()
}

type spawnCommand struct {
	bundles []Bundle
	then    func(EntityId)
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues the creation of an entity with the given components.
func (c *Commands) Spawn(bundles ...Bundle) {
	c.spawns = append(c.spawns, spawnCommand{bundles: bundles})
}

// SpawnThen queues a spawn and calls then with the new id once it exists.
func (c *Commands) SpawnThen(then func(EntityId), bundles ...Bundle) {
	c.spawns = append(c.spawns, spawnCommand{bundles: bundles, then: then})
}

// Despawn queues an entity deletion.
func (c *Commands) Despawn(id EntityId) {
	c.despawns = append(c.despawns, id)
}

// Defer queues a function to run after all structural changes were applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.despawns) + len(c.defers)
}

// Flush applies all queued commands to the world, resetting the buffer state.
// Despawns run first, then spawns, then deferred functions.
func (c *Commands) Flush(w *World) {
	for _, id := range c.despawns {
		// double despawns of the same id are harmless: the second one misses
		w.Despawn(id)
	}

	for _, cmd := range c.spawns {
		id := w.Spawn()
		for _, b := range cmd.bundles {
			b(id)
		}
		if cmd.then != nil {
			cmd.then(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
}
