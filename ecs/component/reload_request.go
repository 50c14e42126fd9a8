package component

// ReloadRequest is a marker component used to signal the game loop to tear
// the session down and rebuild it from the level description. Systems create
// a short-lived entity with this component; the orchestrator owns the reload.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
