package pos

func isView(name string) bool {
	switch name {
	case ViewPOS, ViewReports, ViewInventory, ViewSettings:
		return true
	}
	return false
}

// SwitchView navigates between screens. The inventory view is gated:
// while locked the switch is deferred onto the gate and ErrLocked is
// returned so the caller can raise the PIN challenge; the view flips
// automatically once the PIN goes through.
func (a *App) SwitchView(name string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !isView(name) {
		return a.view, ErrUnknownView
	}

	if name == ViewInventory && !a.gate.unlocked {
		a.gate.pending = &Command{Name: CmdSwitchView, Arg: ViewInventory}
		a.gate.buffer = ""
		return a.view, ErrLocked
	}

	a.view = name
	return a.view, nil
}

// View returns the current screen.
func (a *App) View() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}
