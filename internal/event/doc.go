// Package event provides a small synchronous publish/subscribe bus.
//
// The editing core is single-threaded and event-driven: handlers run
// synchronously on the publisher's goroutine, in subscription order, so a
// subscriber never observes a partially updated document. Subscribing and
// unsubscribing are safe from any goroutine.
package event
