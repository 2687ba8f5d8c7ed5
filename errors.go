package triemap

import "errors"

// ErrConcurrentModification reports that a map was structurally modified
// while an iterator or entry obtained from it was still in use.
//
// Iterator.Err returns it; the iter.Seq adapters and entries panic with it.
var ErrConcurrentModification = errors.New("triemap: map modified during iteration")
