package dashboard

// Action is a decoded user input applied to the dashboard.
type Action int

const (
	// ActionQuit stops the dashboard. Terminal: the control loop performs
	// no further ticks or renders after it is applied.
	ActionQuit Action = iota

	// ActionSelectNext moves the process selection down one row.
	ActionSelectNext

	// ActionSelectPrevious moves the process selection up one row.
	ActionSelectPrevious
)

// Controller owns the engine and the running flag. All input flows through
// Apply, all sampling through Tick, and the render surface only ever sees
// the immutable snapshot returned by View.
type Controller struct {
	engine  *Engine
	running bool
}

// NewController creates a controller around the given engine.
func NewController(engine *Engine) *Controller {
	return &Controller{engine: engine, running: true}
}

// Running reports whether the dashboard should keep ticking and rendering.
func (c *Controller) Running() bool {
	return c.running
}

// Apply routes a decoded input action. Quit is terminal; selection actions
// delegate to the process table.
func (c *Controller) Apply(action Action) {
	switch action {
	case ActionQuit:
		c.running = false
	case ActionSelectNext:
		c.engine.Processes().MoveSelection(1)
	case ActionSelectPrevious:
		c.engine.Processes().MoveSelection(-1)
	}
}

// Tick advances the sampling engine by one frame. Once the controller has
// stopped running it becomes a no-op.
func (c *Controller) Tick(frame uint64) error {
	if !c.running {
		return nil
	}
	return c.engine.Tick(frame)
}

// View builds the immutable per-frame snapshot consumed by the render
// surface. Every slice is a copy; mutating the view cannot touch engine
// state.
func (c *Controller) View() View {
	used, total := c.engine.MemoryTotals()
	return View{
		Frame:       c.engine.lastFrame,
		CPU:         c.engine.CPU().Samples(),
		Memory:      c.engine.Memory().Samples(),
		MemoryUsed:  used,
		MemoryTotal: total,
		Interfaces:  c.engine.Network().SnapshotSorted(),
		Disks:       c.engine.Disks().Entries(),
		Processes:   c.engine.Processes().SortedView(),
		Selected:    c.engine.Processes().Selected(),
	}
}
