// Package tap assigns click and tap counts to pointer events.
//
// A Counter watches a stream of pointer events, possibly from many
// concurrent pointers, and stamps each Down with how many times in a row
// the same spot has been pressed: 1 for a fresh press, 2 for a double click,
// and so on. The count is copied onto the Up that ends the press and onto
// every Move sample in between.
//
// Two presses belong to the same sequence when the second lands within a
// small radius of the first (the "slop") and starts less than 500ms after
// the first was released:
//
//	var c tap.Counter
//	for _, e := range events {
//	    e = c.Attach(scaleFactor, e)
//	    if d, ok := e.(pointer.Down); ok && d.State.Count == 2 {
//	        // double click
//	    }
//	}
//
// Matching is by place and time only. A second finger landing where the
// first just lifted continues the first finger's sequence.
//
// A Counter is not safe for concurrent use.
package tap
