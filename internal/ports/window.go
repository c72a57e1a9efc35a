package ports

// WindowActivator brings the terminal window owning a session to the
// foreground. Activation is fire-and-forget: failures are swallowed and
// never reported back to the caller.
type WindowActivator interface {
	Activate(windowRef string)
}
