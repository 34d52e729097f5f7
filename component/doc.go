// Package component defines the lifecycle interface for long-lived parts of
// a process and a registry that starts them in order and stops them in
// reverse.
//
// # Usage
//
//	reg := component.NewRegistry()
//	_ = reg.Register(dev)
//	if err := reg.StartAll(ctx); err != nil { ... }
//	defer reg.StopAll(context.Background())
package component
