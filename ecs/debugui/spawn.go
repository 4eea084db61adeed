package debugui

// SpawnDebugUI adds the standard panels: entity browser, component
// inspector, world stats and system timings.
func SpawnDebugUI(o *Overlay) {
	browser := NewEntityBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	perf := NewPerformanceStatsComponent(120)
	timings := NewSystemTimingsComponent(120)
	timer := NewFrameTimer()

	o.Add(func() { browser.Render(o.world) })
	o.Add(func() { inspector.Render(o.world, browser.GetSelectedEntity()) })
	o.Add(func() { perf.Render(o.world, timer.GetDeltaTime()) })
	o.Add(func() { timings.Render(o.scheduler) })
}
