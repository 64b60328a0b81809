// Package surface defines the presentation-target abstraction the
// motion engine renders through.
//
// The engine only needs two primitives from its host: somewhere to
// draw a finished frame and a way to read the result back. A Surface
// provides both; ImageSurface is the CPU-backed implementation used by
// tests, export and the demo. Hosts with their own display path (a GUI
// canvas, a GPU swapchain) implement Surface and hand it to the
// engine.
package surface
