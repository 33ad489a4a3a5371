// Package viz is the interactive terminal view of a folding wall.
//
// The strips are drawn as a braille wireframe ([Canvas], [Camera],
// [Render3D]) next to a stats panel with a compression graph. The
// pointer follows the mouse, or the arrow keys, through a damped
// spring so coarse terminal cells still give smooth motion.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset wall and pointer
//	C     - Center the pointer
//	T     - Cycle color themes
//	x/y   - Rotate the camera
//	+/-   - Zoom
//	?     - Show help overlay
package viz
