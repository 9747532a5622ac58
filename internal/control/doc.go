// Package control maps user input onto display operations so that every
// presenter offers the same key bindings.
//
// Presenters translate their native key events into a key name, look the
// name up, and hand the resulting [Action] to [Controls.Apply]:
//
//   - [ToggleAnimation]: start or stop the clock
//   - [Step]: run one frame by hand
//   - [ToggleLine], [ToggleCube], [ToggleText]: switch elements
//   - [MoveLeft] and friends: nudge the cube
//
// # Usage
//
//	ctl := control.Defaults()
//	if a := control.Lookup("space"); a != control.None {
//		res := ctl.Apply(d, a)
//		// redraw when res is Redraw or Stepped, exit on Quit
//	}
package control
