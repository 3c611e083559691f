package component

// PlayerTag marks the player entity, the single chase target of every agent.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
