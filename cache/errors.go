package cache

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfig is returned by [NewAssociative] and [NewDash] when a size
// is not positive or the policy kind is unknown. The wrapped message names
// the offending field.
const ErrInvalidConfig = constError("cache: invalid config")
