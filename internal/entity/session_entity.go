package entity

// Session is one caller's mutable state: the resolved active store and the
// chat transcript. Each session owns its state exclusively; concurrent
// sessions never share a Session value.
type Session struct {
	Id string `json:"id"`

	// ActiveStore is the resolved store resource name, cached after the
	// first successful resolution so repeated resolves never create
	// duplicate stores.
	ActiveStore string `json:"active_store"`

	// Messages is the append-only transcript, cleared only on explicit
	// request.
	Messages []ChatTurn `json:"messages"`
}
