// Package anim drives a life.Grid frame by frame.
//
// A [Controller] is a transition function: the host calls [Controller.OnFrame]
// once per display refresh and gets back the controller's [State] and a
// [Signal] saying whether another frame should be requested. Every Speed-th
// frame is a generation boundary where pending states are committed and the
// next ones computed; the frames in between redraw the current population.
//
// The drawing target is any [Surface] and the frame source is any
// [Scheduler]. [Animator] binds the two, [FrameQueue] is a headless
// scheduler used by the CLI and tests.
package anim
