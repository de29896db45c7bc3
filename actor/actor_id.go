package actor

// ActorId identifies an actor within a World. Ids start at 1, increase monotonically
// and are never reused while the World lives. The zero value means "no actor".
type ActorId uint64
