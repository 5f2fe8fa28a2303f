// Package facade demonstrates the Facade pattern: one intention-level call
// in front of a multi-device subsystem.
//
// What
//
//   - TV, DVDPlayer, SoundSystem and Projector are the subsystem devices,
//     each with its own small switch-on surface.
//   - HomeTheater is the facade. WatchMovie runs the full power-on sequence
//     in the one fixed order that actually works, so the caller asks for
//     the intent ("movie") rather than the procedure.
//
// Why
//
//	Watching a movie takes seven device calls in the right order; get one
//	wrong and the screen stays black. Spelled out at every call site, that
//	procedure couples clients to the whole device zoo. Behind the facade
//	clients hold a single object and the procedure lives in one place.
//
// The devices stay exported: a client that needs the full control surface
// can still drive them directly, the facade just covers the common case.
//
// Usage
//
//	facade.NewHomeTheater(os.Stdout).WatchMovie()
package facade
