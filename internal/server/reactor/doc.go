// Package reactor implements keva's event-driven TCP front end.
//
// A Server owns a fleet of workers. Every worker binds its own listening
// socket to the same port with SO_REUSEPORT, so the kernel load-balances
// incoming connections across workers, and runs its own epoll loop on a
// dedicated OS thread: the listener is watched level-triggered, accepted
// sockets edge-triggered. Client reads are drained to EWOULDBLOCK per
// event, the installed handler turns request bytes into reply bytes, and
// the reply goes out in a single send. Partial sends are dropped; there
// is no per-connection write queue.
//
// Linux only.
package reactor
