package match

// Sender delivers outbound protocol messages to one session's transport.
// Implementations must not block: the dispatcher runs under the server
// lock and a slow socket must never stall other sessions.
type Sender interface {
	Send(msg any)
}
