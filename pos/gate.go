package pos

// Command is a deferred operation waiting on the admin gate: the thing
// the user was trying to do when the PIN challenge interrupted them. It
// is an explicit value on the gate, not an ambient callback, so it can
// be inspected and tested. The gate holds at most one pending command;
// a new challenge replaces whatever was waiting.
type Command struct {
	Name string `json:"name"`
	Arg  string `json:"arg,omitempty"`
}

const CmdSwitchView = "switch-view"

const pinLength = 4

// gate is the Locked/Unlocked PIN state machine. Zero value is Locked
// with an empty buffer. No lockout, no backoff, no unlock expiry: the
// flag stays up until ToggleAdmin or a restart.
type gate struct {
	pin      string
	unlocked bool
	buffer   string
	pending  *Command
}

// GateResult reports what a PIN digit did. Completed is true once four
// digits were consumed, whether or not they matched. Resumed carries the
// deferred command that ran on a successful unlock, if there was one.
type GateResult struct {
	Unlocked  bool     `json:"unlocked"`
	Completed bool     `json:"completed"`
	Digits    int      `json:"digits"`
	Resumed   *Command `json:"resumed,omitempty"`
}

// EnterPinDigit feeds one digit into the gate buffer. On the fourth
// digit the buffer is compared against the configured PIN: a match
// unlocks the gate and runs the pending command; a mismatch clears the
// buffer and reports ErrWrongPin. Every attempt is free.
func (a *App) EnterPinDigit(digit string) (GateResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return GateResult{Digits: len(a.gate.buffer)}, ErrBadDigit
	}
	if a.gate.unlocked {
		return GateResult{Unlocked: true}, nil
	}

	a.gate.buffer += digit
	if len(a.gate.buffer) < pinLength {
		return GateResult{Digits: len(a.gate.buffer)}, nil
	}

	entered := a.gate.buffer
	a.gate.buffer = ""

	// A mismatch keeps the pending command parked: the user can retry
	// and still land where they were headed.
	if entered != a.gate.pin {
		return GateResult{Completed: true}, ErrWrongPin
	}

	a.gate.unlocked = true
	res := GateResult{Unlocked: true, Completed: true, Digits: pinLength}
	if cmd := a.gate.pending; cmd != nil {
		a.gate.pending = nil
		a.executeLocked(*cmd)
		res.Resumed = cmd
	}
	return res, nil
}

// ClearPin empties the digit buffer without touching the lock state.
func (a *App) ClearPin() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gate.buffer = ""
}

// ToggleAdmin locks an unlocked gate, evicting the user to the POS view.
// On a locked gate it just starts a challenge (clears the buffer) and
// reports ErrLocked so the caller can prompt for the PIN.
func (a *App) ToggleAdmin() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.gate.unlocked {
		a.gate.unlocked = false
		a.gate.pending = nil
		a.view = ViewPOS
		return false, nil
	}

	// Fresh challenge with nothing deferred: the user asked for admin
	// mode itself, not a gated operation.
	a.gate.buffer = ""
	a.gate.pending = nil
	return false, ErrLocked
}

// IsAdmin reports whether the gate is currently unlocked.
func (a *App) IsAdmin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gate.unlocked
}

// Defer records cmd to run when the gate next unlocks, replacing any
// previously pending command, and clears the digit buffer for a fresh
// challenge.
func (a *App) Defer(cmd Command) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gate.pending = &cmd
	a.gate.buffer = ""
}

// Pending returns the command waiting on the gate, if any.
func (a *App) Pending() *Command {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gate.pending == nil {
		return nil
	}
	cmd := *a.gate.pending
	return &cmd
}

// executeLocked dispatches a resumed command. Lock held by the caller.
func (a *App) executeLocked(cmd Command) {
	switch cmd.Name {
	case CmdSwitchView:
		if isView(cmd.Arg) {
			a.view = cmd.Arg
		}
	}
}
